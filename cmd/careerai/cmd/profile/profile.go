package profile

import (
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/cmd/careerai/internal/cli"
)

var provider *cli.Provider

// ProfileCmd is the parent command for profile operations
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long:  `Commands for viewing and updating your CareerAI profile.`,
}

func init() {
	ProfileCmd.AddCommand(showCmd)
	ProfileCmd.AddCommand(completeCmd)
	ProfileCmd.AddCommand(updateCmd)
}

// SetProvider injects the shared session provider.
func SetProvider(p *cli.Provider) {
	provider = p
}
