package auth

import (
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/cmd/careerai/internal/cli"
)

var provider *cli.Provider

// AuthCmd is the parent command for auth operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for logging in, registering, and inspecting the session.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
}

// SetProvider injects the shared session provider.
func SetProvider(p *cli.Provider) {
	provider = p
}
