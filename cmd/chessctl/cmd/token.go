package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a valid access token, refreshing it if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		token, err := a.manager.AccessToken(cmd.Context())
		if err != nil {
			if msg := a.manager.State().ErrorMessage; msg != "" {
				return fmt.Errorf("%s", msg)
			}

			return fmt.Errorf("no valid session, run `chessctl login`: %w", err)
		}

		fmt.Println(token)

		return nil
	},
}
