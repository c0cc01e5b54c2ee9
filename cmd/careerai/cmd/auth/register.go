package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/forms"
)

var registerForm forms.RegistrationForm

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a CareerAI account",
	Long: `Creates an account and starts a session in one step. The issued tokens are
stored in the credential store, so no separate login is needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := forms.NewValidator().ValidateRegistration(registerForm); err != nil {
			return err
		}

		manager, err := provider.Manager(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialise session: %w", err)
		}

		if err := manager.Register(cmd.Context(), registerForm.Payload()); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		snap := manager.Snapshot()
		pterm.Success.Printf("Account created for %s\n", snap.User.Email)
		pterm.Info.Println("Run `careerai profile complete` to finish onboarding.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerForm.Email, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerForm.Username, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerForm.Password, "password", "", "Password")
	registerCmd.Flags().StringVar(&registerForm.ConfirmPassword, "confirm-password", "", "Password confirmation")
	registerCmd.Flags().StringVar(&registerForm.FirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerForm.LastName, "last-name", "", "Last name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("confirm-password")
}
