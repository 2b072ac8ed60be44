package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/jobtrack/internal/wire"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show application statistics",
	Long: `Show aggregate statistics over all applications: totals per status,
per company and per month, the success rate, and the average number of days
until the first employer response.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetInt("top")
		asJSON, _ := cmd.Flags().GetBool("json")
		return wire.StatsAdapter().Show(cliContext(), top, asJSON)
	},
}

func init() {
	statsCmd.Flags().Int("top", 5, "Number of companies to show (0 shows all)")
	statsCmd.Flags().Bool("json", false, "Print statistics as JSON")
}

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return statsCmd
}
