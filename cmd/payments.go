// ABOUTME: Payment commands
// ABOUTME: Global listing and stats plus the per-application invoice lifecycle

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var (
	paymentsLimit  int
	paymentsOffset int
	paymentBody    string
)

var paymentColumns = []column{
	{"ID", "id"},
	{"APPLICATION", "application_id"},
	{"AMOUNT", "amount"},
	{"METHOD", "method"},
	{"STATUS", "status"},
	{"INVOICE", "invoice_number"},
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Manage payments and invoices",
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			query := url.Values{}
			if paymentsLimit > 0 {
				query.Set("limit", fmt.Sprint(paymentsLimit))
			}
			if paymentsOffset > 0 {
				query.Set("offset", fmt.Sprint(paymentsOffset))
			}
			raw, err := c.Payments(ctx, query)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, paymentColumns)
			}
			return 0
		})
	},
}

var paymentsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate payment stats",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.PaymentStats(ctx)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var paymentsInvoiceCmd = &cobra.Command{
	Use:   "invoice <application-id>",
	Short: "Open an invoice on an application from a JSON payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(paymentBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.CreateInvoice(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var paymentsReceiptCmd = &cobra.Command{
	Use:   "receipt <application-id> <payment-id> <file>",
	Short: "Attach a receipt image to a payment",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			f, err := os.Open(args[2])
			if err != nil {
				return fail(err)
			}
			defer f.Close()

			raw, err := c.UploadReceipt(ctx, args[0], args[1], filepath.Base(args[2]), f)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var paymentsConfirmCmd = &cobra.Command{
	Use:   "confirm <application-id> <payment-id>",
	Short: "Confirm a payment as received",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.ConfirmPayment(ctx, args[0], args[1])
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var paymentsRejectCmd = &cobra.Command{
	Use:   "reject <application-id> <payment-id>",
	Short: "Reject a pending payment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(paymentBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.RejectPayment(ctx, args[0], args[1], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
	paymentsCmd.AddCommand(paymentsListCmd, paymentsStatsCmd, paymentsInvoiceCmd,
		paymentsReceiptCmd, paymentsConfirmCmd, paymentsRejectCmd)
	paymentsListCmd.Flags().IntVar(&paymentsLimit, "limit", 0, "Maximum rows to return")
	paymentsListCmd.Flags().IntVar(&paymentsOffset, "offset", 0, "Rows to skip")
	paymentsInvoiceCmd.Flags().StringVar(&paymentBody, "body", "", "JSON payload (reads stdin when omitted)")
	paymentsRejectCmd.Flags().StringVar(&paymentBody, "body", "", "JSON payload (reads stdin when omitted)")
}
