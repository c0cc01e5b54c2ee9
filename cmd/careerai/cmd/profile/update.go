package profile

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/api"
	"github.com/careerai/go-careerai/session"
)

var updateProfile api.Profile

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace your profile",
	Long: `Replaces the whole profile and marks onboarding complete. All fields are
replaced; omitted flags clear their fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := provider.Manager(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialise session: %w", err)
		}

		update := session.Update{Profile: &updateProfile}
		if err := manager.UpdateProfile(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		pterm.Success.Println("Profile updated")
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateProfile.Headline, "headline", "", "Professional headline")
	updateCmd.Flags().StringVar(&updateProfile.Location, "location", "", "Location")
	updateCmd.Flags().StringSliceVar(&updateProfile.Skills, "skills", nil, "Skills (comma-separated)")
	updateCmd.Flags().StringVar(&updateProfile.DesiredJobRole, "role", "", "Desired job role")
	updateCmd.Flags().IntVar(&updateProfile.ExperienceYears, "experience", 0, "Years of experience")
}
