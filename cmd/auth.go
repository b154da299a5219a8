// ABOUTME: Authentication commands: login, logout, whoami
// ABOUTME: Login prompts for missing credentials with a huh form

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/stlauto/backoffice-cli/internal/api"
)

var (
	loginPhone    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend",
	Long:  `Log in with phone and password. The session token is stored locally and reused by every other command until logout.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c, err := newClient(ctx)
		if err != nil {
			os.Exit(fail(err))
		}
		if exitCode := runLogin(ctx, c, os.Stdout, loginPhone, loginPassword); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the local session",
	Long:  `Clear the stored token and cached user. No request is sent to the backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newClient(context.Background())
		if err != nil {
			os.Exit(fail(err))
		}
		c.Logout()
		fmt.Println("Logged out.")
	},
}

var registerBody string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account from a JSON payload",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c, err := newClient(ctx)
		if err != nil {
			os.Exit(fail(err))
		}
		payload, err := readPayload(registerBody)
		if err != nil {
			os.Exit(fail(err))
		}
		raw, err := c.Register(ctx, payload)
		if err != nil {
			os.Exit(fail(err))
		}
		printJSON(os.Stdout, raw)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c, err := newClient(ctx)
		if err != nil {
			os.Exit(fail(err))
		}
		if exitCode := runWhoami(ctx, c, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number, e.g. +998901234567")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerBody, "body", "", "JSON payload (reads stdin when omitted)")
}

// runLogin authenticates and reports the outcome, returning an exit code.
func runLogin(ctx context.Context, c *api.Client, w io.Writer, phone, password string) int {
	if phone == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Phone").Placeholder("+998901234567").Value(&phone),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			),
		).WithTheme(huh.ThemeBase())
		if err := form.Run(); err != nil {
			return fail(err)
		}
	}

	if _, err := c.Login(ctx, phone, password); err != nil {
		return fail(err)
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		return fail(err)
	}
	if user == nil {
		fmt.Fprintln(w, "Logged in.")
		return 0
	}
	fmt.Fprintf(w, "Logged in as %s (%s)\n", user.Phone, user.Role)
	return 0
}

// runWhoami prints the cached or freshly fetched current user.
func runWhoami(ctx context.Context, c *api.Client, w io.Writer) int {
	user, err := c.CurrentUser(ctx)
	if err != nil {
		return fail(err)
	}
	if user == nil {
		fmt.Fprintln(w, "Not logged in.")
		return 1
	}

	if IsJSONOutput() {
		printJSON(w, user.Raw)
		return 0
	}
	fmt.Fprintf(w, `Phone:   %s
Name:    %s
Role:    %s
Active:  %t`+"\n", user.Phone, user.FullName, user.Role, user.IsActive)
	return 0
}
