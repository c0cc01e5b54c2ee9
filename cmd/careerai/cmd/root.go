package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/cmd/careerai/cmd/auth"
	"github.com/careerai/go-careerai/cmd/careerai/cmd/courses"
	"github.com/careerai/go-careerai/cmd/careerai/cmd/jobs"
	"github.com/careerai/go-careerai/cmd/careerai/cmd/profile"
	"github.com/careerai/go-careerai/cmd/careerai/internal/cli"
	"github.com/careerai/go-careerai/internal/config"
)

var (
	serverURL   string
	bearerToken string
)

var rootCmd = &cobra.Command{
	Use:   "careerai",
	Short: "CareerAI CLI - career platform client",
	Long: `careerai is the command-line interface for the CareerAI platform. Use it to
manage your account, complete your profile, and browse courses and jobs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		provider := cli.NewProvider(serverURL)
		if bearerToken != "" {
			provider.SetBearerToken(bearerToken)
		}

		// Propagate to subcommands
		auth.SetProvider(provider)
		profile.SetProvider(provider)
		courses.SetProvider(provider)
		jobs.SetProvider(provider)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", config.New().GetAPIBaseURL(), "CareerAI API server URL (default from API_URL)")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "bearer", "", "Ephemeral bearer token bypassing the credential store (for testing)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(profile.ProfileCmd)
	rootCmd.AddCommand(courses.CoursesCmd)
	rootCmd.AddCommand(jobs.JobsCmd)
}
