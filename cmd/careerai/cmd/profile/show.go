package profile

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your account and profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := provider.Client(cmd.Context())
		if err != nil {
			return err
		}

		user, err := client.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch account: %w", err)
		}

		pterm.DefaultSection.Println("Profile")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Name\t%s\n", user.FullName())
		fmt.Fprintf(w, "Email\t%s\n", user.Email)
		fmt.Fprintf(w, "Username\t%s\n", user.Username)
		fmt.Fprintf(w, "Headline\t%s\n", user.Headline)
		fmt.Fprintf(w, "Location\t%s\n", user.Location)
		fmt.Fprintf(w, "Skills\t%s\n", strings.Join(user.Skills, ", "))
		fmt.Fprintf(w, "Desired role\t%s\n", user.DesiredJobRole)
		fmt.Fprintf(w, "Experience\t%d years\n", user.ExperienceYears)
		fmt.Fprintf(w, "Onboarding\t%v\n", user.IsProfileCompleted)
		w.Flush()

		return nil
	},
}
