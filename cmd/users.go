// ABOUTME: User and staff management commands
// ABOUTME: Listing, staff account creation, activation toggles and deletion

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
	usersRole string
	userBody  string
)

var userColumns = []column{
	{"ID", "id"},
	{"PHONE", "phone"},
	{"NAME", "full_name"},
	{"ROLE", "role"},
	{"ACTIVE", "is_active"},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users and staff",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			query := url.Values{}
			if usersRole != "" {
				query.Set("role", usersRole)
			}
			raw, err := c.Users(ctx, query)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, userColumns)
			}
			return 0
		})
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Delete user %s?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			if _, err := c.DeleteUser(ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Fprintf(w, "User %s deleted.\n", args[0])
			return 0
		})
	},
}

var usersCreateStaffCmd = &cobra.Command{
	Use:   "create-staff",
	Short: "Create a staff account from a JSON payload",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(userBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.CreateStaffUser(ctx, payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Activate a user account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runUserStatus(args[0], true)
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a user account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runUserStatus(args[0], false)
	},
}

func runUserStatus(id string, active bool) {
	runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
		raw, err := c.UpdateUserStatus(ctx, id, active)
		if err != nil {
			return fail(err)
		}
		printJSON(w, raw)
		return 0
	})
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersDeleteCmd, usersCreateStaffCmd, usersActivateCmd, usersDeactivateCmd)
	usersListCmd.Flags().StringVar(&usersRole, "role", "", "Filter by role")
	usersCreateStaffCmd.Flags().StringVar(&userBody, "body", "", "JSON payload (reads stdin when omitted)")
}
