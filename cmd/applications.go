// ABOUTME: Loan application commands
// ABOUTME: Listing, detail, status transitions, comments and staff assignment

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var (
	appsStatus     string
	appsOperator   string
	appBody        string
	appReason      string
	appNote        string
	appExternal    bool
	appPage        int
)

var appColumns = []column{
	{"ID", "id"},
	{"CLIENT", "client_phone"},
	{"CAR", "car_id"},
	{"STATUS", "status"},
	{"CONTACT", "contact_status"},
	{"OPERATOR", "operator_id"},
	{"CREATED", "created_at"},
}

var appsCmd = &cobra.Command{
	Use:     "apps",
	Aliases: []string{"applications"},
	Short:   "Manage loan and lease applications",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			query := url.Values{}
			if appsStatus != "" {
				query.Set("status", appsStatus)
			}
			if appsOperator != "" {
				query.Set("operator_id", appsOperator)
			}
			if appPage > 0 {
				query.Set("page", fmt.Sprint(appPage))
			}
			raw, err := c.Applications(ctx, query)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, appColumns)
			}
			return 0
		})
	},
}

var appsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an application",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Application(ctx, args[0])
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderFields(w, raw, appColumns)
			}
			return 0
		})
	},
}

var appsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an application on behalf of a client",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(appBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.CreateApplication(ctx, payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var appsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move an application to a new status",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.UpdateApplicationStatus(ctx, args[0], args[1], appReason)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var appsContactCmd = &cobra.Command{
	Use:   "contact <id> <contact-status>",
	Short: "Record a contact attempt outcome",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.UpdateContactStatus(ctx, args[0], args[1], appNote)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var appsChecklistCmd = &cobra.Command{
	Use:   "checklist <id>",
	Short: "Replace the document checklist from a JSON payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(appBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.UpdateChecklist(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var appsCommentsCmd = &cobra.Command{
	Use:   "comments <id>",
	Short: "List the comments on an application",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Comments(ctx, args[0])
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, []column{
					{"AUTHOR", "author_id"},
					{"INTERNAL", "is_internal"},
					{"TEXT", "text"},
					{"AT", "created_at"},
				})
			}
			return 0
		})
	},
}

var appsCommentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Add a comment (internal by default)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.AddComment(ctx, args[0], args[1], !appExternal)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var appsAssignCmd = &cobra.Command{
	Use:   "assign <id> <operator-id>",
	Short: "Assign an operator",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.AssignOperator(ctx, args[0], args[1])
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var appsAssignManagerCmd = &cobra.Command{
	Use:   "assign-manager <id> <manager-id>",
	Short: "Assign a manager",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.AssignManager(ctx, args[0], args[1])
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.AddCommand(appsListCmd, appsGetCmd, appsCreateCmd, appsStatusCmd, appsContactCmd,
		appsChecklistCmd, appsCommentsCmd, appsCommentCmd, appsAssignCmd, appsAssignManagerCmd)

	appsListCmd.Flags().StringVar(&appsStatus, "status", "", "Filter by status")
	appsListCmd.Flags().StringVar(&appsOperator, "operator", "", "Filter by assigned operator id")
	appsListCmd.Flags().IntVar(&appPage, "page", 0, "Page number")
	appsCreateCmd.Flags().StringVar(&appBody, "body", "", "JSON payload (reads stdin when omitted)")
	appsChecklistCmd.Flags().StringVar(&appBody, "body", "", "JSON checklist (reads stdin when omitted)")
	appsStatusCmd.Flags().StringVar(&appReason, "reason", "", "Reason for the status change")
	appsContactCmd.Flags().StringVar(&appNote, "note", "", "Optional note for the contact attempt")
	appsCommentCmd.Flags().BoolVar(&appExternal, "external", false, "Make the comment visible to the client")
}
