package cmd

import (
	"context"
	"fmt"
	"os"

	"chess/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chessctl",
	Short: "Chess tracker command-line client",
	Long: `chessctl signs you in to the chess tracker and calls its API.

Configuration is read from config/client.yaml or the chessctl directory under
your user config directory. Environment variables override file values.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewClient()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		cmd.SetContext(withApp(cmd.Context(), a))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a := appFrom(cmd); a != nil {
			a.manager.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
}
