// ABOUTME: Admin commands: stats, audit logs, settings and overrides
// ABOUTME: Overrides bypass the normal application transition rules

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
	statsPeriod  string
	auditPage    int
	auditPerPage int
	adminBody    string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin stats, audit logs, settings and overrides",
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show back-office statistics",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			query := url.Values{}
			if statsPeriod != "" {
				query.Set("period", statsPeriod)
			}
			raw, err := c.Stats(ctx, query)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var adminAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List audit log entries",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			query := url.Values{}
			if auditPage > 0 {
				query.Set("page", fmt.Sprint(auditPage))
			}
			if auditPerPage > 0 {
				query.Set("per_page", fmt.Sprint(auditPerPage))
			}
			raw, err := c.AuditLogs(ctx, query)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, []column{
					{"AT", "created_at"},
					{"ACTION", "action"},
					{"ENTITY", "entity_type"},
					{"ENTITY ID", "entity_id"},
					{"USER", "user_id"},
				})
			}
			return 0
		})
	},
}

var adminSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "List backend settings",
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.Settings(ctx)
			if err != nil {
				return fail(err)
			}
			if IsJSONOutput() {
				printJSON(w, raw)
			} else {
				renderList(w, raw, []column{
					{"KEY", "key"},
					{"VALUE", "value"},
					{"UPDATED", "updated_at"},
				})
			}
			return 0
		})
	},
}

var adminSetSettingCmd = &cobra.Command{
	Use:   "set-setting <key> <value>",
	Short: "Update a single setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			raw, err := c.UpdateSetting(ctx, args[0], args[1])
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var adminOverridePriceCmd = &cobra.Command{
	Use:   "override-price <application-id>",
	Short: "Override the agreed price on an application",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Override the price on application %s?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(adminBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.OverridePrice(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

var adminOverrideStatusCmd = &cobra.Command{
	Use:   "override-status <application-id>",
	Short: "Force-set an application status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(fmt.Sprintf("Force a status change on application %s?", args[0])) {
			return
		}
		runResource(func(ctx context.Context, c *api.Client, w io.Writer) int {
			payload, err := readPayload(adminBody)
			if err != nil {
				return fail(err)
			}
			raw, err := c.OverrideStatus(ctx, args[0], payload)
			if err != nil {
				return fail(err)
			}
			printJSON(w, raw)
			return 0
		})
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminStatsCmd, adminAuditCmd, adminSettingsCmd, adminSetSettingCmd,
		adminOverridePriceCmd, adminOverrideStatusCmd)
	adminStatsCmd.Flags().StringVar(&statsPeriod, "period", "", "Stats period: day, week, month, all")
	adminAuditCmd.Flags().IntVar(&auditPage, "page", 0, "Page number")
	adminAuditCmd.Flags().IntVar(&auditPerPage, "per-page", 0, "Rows per page")
	adminOverridePriceCmd.Flags().StringVar(&adminBody, "body", "", "JSON payload (reads stdin when omitted)")
	adminOverrideStatusCmd.Flags().StringVar(&adminBody, "body", "", "JSON payload (reads stdin when omitted)")
}
