package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account at the identity provider and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		email, err := pterm.DefaultInteractiveTextInput.Show("Email")
		if err != nil {
			return err
		}
		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}
		confirm, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Confirm password")
		if err != nil {
			return err
		}

		if err := a.manager.SubmitSignUp(cmd.Context(), email, password, confirm); err != nil {
			return errors.New(a.manager.State().ErrorMessage)
		}

		pterm.Success.Printf("Account created for %s\n", email)
		pterm.Info.Println("Run `chessctl register` to create your player profile.")

		return nil
	},
}
