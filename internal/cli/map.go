package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/jobtrack/internal/wire"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Export application locations as GeoJSON",
	Long: `Geocode the location of every active application and write the markers
as a GeoJSON FeatureCollection. Rejected applications and applications without
a location are left off the map.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		return wire.MapAdapter().Export(cliContext(), out)
	},
}

func init() {
	mapCmd.Flags().StringP("out", "o", "-", "Output file (- for stdout)")
}

// MapCmd returns the map command
func MapCmd() *cobra.Command {
	return mapCmd
}
