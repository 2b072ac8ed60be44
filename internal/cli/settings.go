package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/wire"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change user settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SettingsAdapter().Show(cliContext())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SettingsAdapter().Set(cliContext(), settingsPatchFromFlags(cmd))
	},
}

func init() {
	settingsSetCmd.Flags().String("theme", "", "UI theme (solar, darkly, superhero, cosmo, flatly, litera)")
	settingsSetCmd.Flags().String("default-status", "", "Status given to new applications")
	settingsSetCmd.Flags().String("email", "", "Notification email address")
	settingsSetCmd.Flags().Bool("mailing", false, "Enable reminder mails")
	settingsSetCmd.Flags().Int("reminder-days", 7, "Days until the default reminder of a new application (0 disables)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

// SettingsCmd returns the settings command
func SettingsCmd() *cobra.Command {
	return settingsCmd
}

func settingsPatchFromFlags(cmd *cobra.Command) primary.SettingsPatch {
	flags := cmd.Flags()
	var patch primary.SettingsPatch
	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		patch.Theme = &v
	}
	if flags.Changed("default-status") {
		v, _ := flags.GetString("default-status")
		patch.DefaultStatus = &v
	}
	if flags.Changed("email") {
		v, _ := flags.GetString("email")
		patch.Email = &v
	}
	if flags.Changed("mailing") {
		v, _ := flags.GetBool("mailing")
		patch.MailingEnabled = &v
	}
	if flags.Changed("reminder-days") {
		v, _ := flags.GetInt("reminder-days")
		patch.ReminderDays = &v
	}
	return patch
}
