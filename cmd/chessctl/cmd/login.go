package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"chess/internal/client/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const maxManualAttempts = 3

var useGoogle bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the chess tracker",
	Long: `Restores a stored session if one is still valid. Otherwise tries the password
saved in the system keychain, then asks for email and password.

Use --google to sign in with Google through the device authorization flow.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		ctx := cmd.Context()
		manager := a.manager

		if useGoogle {
			if err := manager.SubmitFederatedSignIn(ctx); err != nil {
				return errors.New(manager.State().ErrorMessage)
			}
			pterm.Success.Printf("Signed in as %s\n", manager.State().Email)

			return nil
		}

		spinner, _ := pterm.DefaultSpinner.Start("Checking for an existing session...")
		err := manager.Start(ctx)
		state := manager.State()
		if state.Phase == session.PhaseLoggedIn {
			spinner.Success("Signed in")

			return nil
		}
		_ = spinner.Stop()
		if err != nil {
			a.logger.Debug("Automatic sign-in failed", slog.Any("error", err))
		}

		for attempt := 0; attempt < maxManualAttempts; attempt++ {
			if msg := manager.State().ErrorMessage; msg != "" {
				pterm.Warning.Println(msg)
			}

			email, password, err := promptCredentials(manager.State().Email)
			if err != nil {
				return err
			}

			if err := manager.SubmitLogin(ctx, email, password); err == nil {
				pterm.Success.Printf("Signed in as %s\n", email)

				return nil
			}
		}

		return fmt.Errorf("sign-in failed: %s", manager.State().ErrorMessage)
	},
}

func init() {
	loginCmd.Flags().BoolVar(&useGoogle, "google", false, "Sign in with Google")
}

func promptCredentials(defaultEmail string) (string, string, error) {
	email, err := pterm.DefaultInteractiveTextInput.WithDefaultValue(defaultEmail).Show("Email")
	if err != nil {
		return "", "", err
	}

	password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
	if err != nil {
		return "", "", err
	}

	return email, password, nil
}
