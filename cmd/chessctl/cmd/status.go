package cmd

import (
	"errors"
	"time"

	"chess/internal/client/credential"
	"chess/internal/util"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		tokens, err := a.store.Load()
		if err != nil {
			if errors.Is(err, credential.ErrNoCredentials) {
				pterm.Info.Println("Not logged in")

				return nil
			}

			return err
		}

		now := time.Now()
		state := "valid"
		if !a.store.HasValid() {
			state = "expired (will refresh on next use)"
		}

		pterm.DefaultSection.Println("Authentication Status")

		return pterm.DefaultTable.WithData(pterm.TableData{
			{"Access token", state},
			{"Expires", tokens.ExpiresAt.Local().Format(time.RFC1123) + " (" + util.FormatExpiry(tokens.ExpiresAt, now) + ")"},
			{"Refresh token", yesNo(tokens.RefreshToken != "")},
			{"Credentials file", a.cfg.Credentials.Path},
		}).Render()
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
