package cmd

import (
	"time"

	"chess/internal/client/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var displayName string

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show your chess tracker account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		account, err := a.api.Me(cmd.Context())
		if err != nil {
			return err
		}

		return renderAccount(account)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create your chess tracker account for the signed-in identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		account, err := a.api.Register(cmd.Context(), displayName)
		if err != nil {
			return err
		}

		pterm.Success.Println("Account registered")

		return renderAccount(account)
	},
}

func init() {
	registerCmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the name on your identity)")
}

func renderAccount(account *api.Account) error {
	return pterm.DefaultTable.WithData(pterm.TableData{
		{"ID", account.ID.String()},
		{"Name", account.Name},
		{"Email", account.Email},
		{"Created", account.CreatedAt.Local().Format(time.RFC1123)},
	}).Render()
}
