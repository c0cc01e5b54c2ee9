package profile

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/internal/utils"
	"github.com/careerai/go-careerai/session"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark onboarding as complete",
	Long: `Flips the onboarding-complete flag on your account. The change applies
without re-fetching the whole account record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := provider.Manager(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialise session: %w", err)
		}

		update := session.Update{ProfileCompleted: utils.Ptr(true)}
		if err := manager.UpdateProfile(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		pterm.Success.Println("Onboarding marked complete")
		return nil
	},
}
