package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long: `Notifies the server so the refresh token is blacklisted and clears the
credential store. Logging out when not logged in is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := provider.Manager(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialise session: %w", err)
		}

		manager.Logout(cmd.Context())
		pterm.Success.Println("Logged out")
		return nil
	},
}
