package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var forgetPassword bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		if err := a.manager.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}

		if forgetPassword {
			if err := a.keyring.Forget(cmd.Context()); err != nil {
				return fmt.Errorf("forget saved password: %w", err)
			}
		}

		pterm.Success.Println("Logged out")

		return nil
	},
}

func init() {
	logoutCmd.Flags().BoolVar(&forgetPassword, "forget", false, "Also remove the password saved in the system keychain")
}
