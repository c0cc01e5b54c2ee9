package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/forms"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with CareerAI",
	Long: `Logs in with email and password and stores the session tokens in the
credential store (~/.careerai/credentials.json). Later commands reuse the
stored session and renew the access token automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := forms.NewValidator().ValidateLogin(loginEmail, loginPassword); err != nil {
			return err
		}

		manager, err := provider.Manager(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialise session: %w", err)
		}

		if err := manager.Login(cmd.Context(), loginEmail, loginPassword); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		snap := manager.Snapshot()
		pterm.Success.Printf("Logged in as %s\n", snap.User.FullName())
		if !snap.ProfileCompleted() {
			pterm.Info.Println("Your profile is incomplete. Run `careerai profile complete` to finish onboarding.")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
