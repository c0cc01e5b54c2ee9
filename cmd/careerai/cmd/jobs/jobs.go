package jobs

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/careerai/go-careerai/cmd/careerai/internal/cli"
)

var (
	provider *cli.Provider
	search   string
)

// JobsCmd searches job postings.
var JobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := provider.Client(cmd.Context())
		if err != nil {
			return err
		}

		jobs, err := client.Jobs(cmd.Context(), search)
		if err != nil {
			return fmt.Errorf("failed to fetch jobs: %w", err)
		}

		if len(jobs) == 0 {
			pterm.Info.Println("No jobs found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tCOMPANY\tLOCATION\tTYPE\tSKILLS")
		for _, j := range jobs {
			location := j.LocationName
			if j.IsRemote {
				location = "Remote"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				j.Title, j.CompanyName, location, j.EmploymentType, strings.Join(j.RequiredSkills, ", "))
		}
		w.Flush()

		return nil
	},
}

func init() {
	JobsCmd.Flags().StringVar(&search, "search", "", "Filter by title, company or skill")
}

// SetProvider injects the shared session provider.
func SetProvider(p *cli.Provider) {
	provider = p
}
