// ABOUTME: Dashboard command launching the interactive TUI
// ABOUTME: Logs go to a file so zerolog never draws over the terminal

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
	"github.com/stlauto/backoffice-cli/internal/config"
	"github.com/stlauto/backoffice-cli/internal/logger"
	"github.com/stlauto/backoffice-cli/internal/session"
	"github.com/stlauto/backoffice-cli/internal/toast"
	"github.com/stlauto/backoffice-cli/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Open the interactive dashboard",
	Long:    `Launch the full-screen terminal dashboard with stats, resource tables and notifications.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(context.Background())
		if err != nil {
			os.Exit(fail(fmt.Errorf("failed to load configuration: %w", err)))
		}

		baseURL := cfg.APIBase
		if apiURL != "" {
			baseURL = apiURL
		}

		configDir := session.DefaultConfigDir()
		log := logger.New(cfg.LogLevel, false)
		if configDir != "" {
			if mkErr := os.MkdirAll(configDir, 0700); mkErr == nil {
				if f, openErr := os.OpenFile(filepath.Join(configDir, "debug.log"),
					os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); openErr == nil {
					defer f.Close()
					log = logger.NewWithOutput(cfg.LogLevel, false, f)
				}
			}
		}

		client := api.New(baseURL, session.New(configDir), log)
		if err := tui.Run(client, toast.New(), log); err != nil {
			os.Exit(fail(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
