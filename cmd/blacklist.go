// ABOUTME: Blacklist commands
// ABOUTME: Blocked-phone listing, blocking and removal by id or raw phone

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var blacklistBody string

var blacklistColumns = []column{
	{"ID", "id"},
	{"PHONE", "phone"},
	{"REASON", "reason"},
	{"ADDED", "created_at"},
}

var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Manage the phone blacklist",
}

var blacklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blacklist entries",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Blacklist(ctx, nil)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, blacklistColumns)
			}
			return 0
		})
	},
}

var blacklistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Block a phone from a JSON payload",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(blacklistBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.AddToBlacklist(ctx, payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var blacklistRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an entry by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Remove blacklist entry %s?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			if _, err := c.RemoveFromBlacklist(ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Fprintf(w, "Entry %s removed.\n", args[0])
			return 0
		})
	},
}

var blacklistRemovePhoneCmd = &cobra.Command{
	Use:   "remove-phone <phone>",
	Short: "Remove an entry by phone number",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Unblock %s?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			if _, err := c.RemoveFromBlacklistByPhone(ctx, args[0]); err != nil {
				return fail(err)
			}
			fmt.Fprintf(w, "Phone %s unblocked.\n", args[0])
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(blacklistCmd)
	blacklistCmd.AddCommand(blacklistListCmd, blacklistAddCmd, blacklistRemoveCmd, blacklistRemovePhoneCmd)
	blacklistAddCmd.Flags().StringVar(&blacklistBody, "body", "", "JSON payload (reads stdin when omitted)")
}
