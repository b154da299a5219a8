// ABOUTME: Car inventory commands
// ABOUTME: List, show, create, update and delete cars in the catalog

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var (
	carsStatus string
	carsBrand  string
	carBody    string
)

var carColumns = []column{
	{"ID", "id"},
	{"BRAND", "brand"},
	{"MODEL", "model"},
	{"YEAR", "year"},
	{"PRICE", "price"},
	{"STATUS", "status"},
}

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "Manage the car inventory",
}

var carsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cars",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			query := url.Values{}
			if carsStatus != "" {
				query.Set("status", carsStatus)
			}
			if carsBrand != "" {
				query.Set("brand", carsBrand)
			}
			raw, err := c.Cars(ctx, query)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, carColumns)
			}
			return 0
		})
	},
}

var carsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a car",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Car(ctx, args[0])
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderFields(w, raw, carColumns)
			}
			return 0
		})
	},
}

var carsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a car from a JSON payload",
	Long:  `Create a car. The payload is read from --body or stdin and passed to the backend unchanged.`,
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(carBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.CreateCar(ctx, payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var carsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Patch a car with a JSON payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(carBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.UpdateCar(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var carsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a car",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Delete car %s?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			if _, err := c.DeleteCar(ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Fprintf(w, "Car %s deleted.\n", args[0])
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(carsCmd)
	carsCmd.AddCommand(carsListCmd, carsGetCmd, carsCreateCmd, carsUpdateCmd, carsDeleteCmd)
	carsListCmd.Flags().StringVar(&carsStatus, "status", "", "Filter by status")
	carsListCmd.Flags().StringVar(&carsBrand, "brand", "", "Filter by brand")
	carsCreateCmd.Flags().StringVar(&carBody, "body", "", "JSON payload (reads stdin when omitted)")
	carsUpdateCmd.Flags().StringVar(&carBody, "body", "", "JSON payload (reads stdin when omitted)")
}

// runResource wires signal handling and client construction around a
// resource action, exiting with its code on failure.
func runResource(fn func(ctx context.Context, c *api.Client, w io.Writer) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c, err := newClient(ctx)
	if err != nil {
		os.Exit(fail(err))
	}
	if exitCode := fn(ctx, c, os.Stdout); exitCode != 0 {
		os.Exit(exitCode)
	}
}

// readPayload parses an inline JSON body, falling back to stdin.
func readPayload(inline string) (json.RawMessage, error) {
	data := []byte(inline)
	if inline == "" {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("payload is not valid JSON")
	}
	return json.RawMessage(data), nil
}
