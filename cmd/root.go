// ABOUTME: Root command for the stl-admin CLI
// ABOUTME: Handles global flags, configuration and API client construction

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
	"github.com/stlauto/backoffice-cli/internal/config"
	"github.com/stlauto/backoffice-cli/internal/logger"
	"github.com/stlauto/backoffice-cli/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
	assumeYes  bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "stl-admin",
	Short: "Back-office CLI for the STL Auto leasing platform",
	Long: `stl-admin is a terminal client for the STL Auto back office.

It manages the car inventory, loan applications, staff, blacklist,
payments and promotional stories against the STL Auto REST backend.

Environment Variables:
  STL_ADMIN_API_BASE   Backend base URL (default: http://localhost:8000/api/v1)
  STL_ADMIN_LOG_LEVEL  Log level: trace, debug, info, warn, error (default: info)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides STL_ADMIN_API_BASE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output raw JSON instead of tables")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newClient builds the API client from flags, environment and the
// persisted session (flag > env > default for the base URL).
func newClient(ctx context.Context) (*api.Client, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	baseURL := cfg.APIBase
	if apiURL != "" {
		baseURL = apiURL
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	sess := session.New(session.DefaultConfigDir())
	return api.New(baseURL, sess, log), nil
}

// confirm asks before a destructive action unless --yes was given.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	ok := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeBase())
	if err := form.Run(); err != nil {
		return false
	}
	return ok
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 2
}
