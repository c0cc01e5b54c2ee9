package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := provider.Manager(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialise session: %w", err)
		}

		snap := manager.Snapshot()
		pterm.DefaultSection.Println("Authentication Status")

		if !snap.IsAuthenticated {
			pterm.Info.Println("Not logged in. Run `careerai auth login`.")
			return nil
		}

		pterm.Info.Printf("Logged in as: %s (%s)\n", snap.User.FullName(), snap.User.Email)
		pterm.Info.Printf("Session state: %s\n", snap.State)
		if snap.ProfileCompleted() {
			pterm.Info.Println("Profile: complete")
		} else {
			pterm.Warning.Println("Profile: incomplete. Run `careerai profile complete`.")
		}
		return nil
	},
}
