package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/jobtrack/internal/cli"
	"github.com/example/jobtrack/internal/version"
	"github.com/example/jobtrack/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "jobtrack",
		Short:   "jobtrack - personal job application tracker",
		Version: version.String(),
		Long: `jobtrack keeps a local record of job applications, their roadmap
milestones and reminders, and reports statistics over them.

Data lives in ~/.jobtrack unless JOBTRACK_HOME is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Record store
	rootCmd.AddCommand(cli.AppCmd())

	// Reporting
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.MapCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	rootCmd.AddCommand(cli.SettingsCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	err := rootCmd.Execute()
	wire.Shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
