package cmd

import (
	"context"
	"fmt"
	"os"

	"intl-sheets/core/auth"
	"intl-sheets/core/config"

	"github.com/spf13/cobra"
)

// authCmd groups credential commands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google credentials",
}

// loginCmd runs the OAuth consent flow and caches the token.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize access to the spreadsheet with a Google account",
	Long: `Runs the OAuth consent flow for AUTH_MODE=oauth.

The client secret is read from AUTH_CREDENTIALS_FILE and the resulting token
is written to AUTH_TOKEN_FILE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Auth.Mode != auth.ModeOAuth {
			return fmt.Errorf("auth login requires AUTH_MODE=%s (current: %q)", auth.ModeOAuth, cfg.Auth.Mode)
		}

		if err := auth.Login(context.Background(), cfg.Auth, os.Stdin, cmd.OutOrStdout()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Token saved to %s\n", cfg.Auth.TokenFile)
		return nil
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	RootCmd.AddCommand(authCmd)
}
