package courses

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/cmd/careerai/internal/cli"
)

var provider *cli.Provider

// CoursesCmd lists the course catalog.
var CoursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse the course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := provider.Client(cmd.Context())
		if err != nil {
			return err
		}

		courses, err := client.Courses(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch courses: %w", err)
		}

		if len(courses) == 0 {
			pterm.Info.Println("No courses found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tCATEGORY\tLEVEL\tWEEKS\tRATING")
		for _, c := range courses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f (%d)\n",
				c.Title, c.CategoryName, c.DifficultyLevel, c.DurationWeeks, c.AverageRating, c.TotalReviews)
		}
		w.Flush()

		return nil
	},
}

// SetProvider injects the shared session provider.
func SetProvider(p *cli.Provider) {
	provider = p
}
