package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/jobtrack/internal/adapters/cli"
	"github.com/example/jobtrack/internal/config"
	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/wire"
)

var appCmd = &cobra.Command{
	Use:     "app",
	Aliases: []string{"application", "apps"},
	Short:   "Manage tracked job applications",
	Long:    "Add, list, update, and delete job applications and their roadmap milestones",
}

var appAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new application",
	Long: `Add a new job application.

Unset fields are pre-filled from the user settings: the
date defaults to today, the status to the configured default status, and a
reminder is scheduled the configured number of days out. Pass --reminder ""
to add the application without a reminder.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := applicationFromFlags(cmd)
		if err != nil {
			return err
		}
		ctx := cliContext()
		settings, err := wire.SettingsService().GetSettings(ctx)
		if err != nil {
			return err
		}
		prefillApplication(app, cmd.Flags().Changed("reminder"), settings, time.Now())
		return wire.ApplicationAdapter().Create(ctx, app)
	},
}

var appListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := listOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return wire.ApplicationAdapter().List(cliContext(), opts)
	},
}

var appShowCmd = &cobra.Command{
	Use:   "show [application-id]",
	Short: "Show application details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return wire.ApplicationAdapter().Show(cliContext(), id)
	},
}

var appUpdateCmd = &cobra.Command{
	Use:   "update [application-id]",
	Short: "Update fields of an application",
	Long: `Update one or more fields of an application.

Only the flags you pass are changed. Pass an empty value (e.g. --notes "")
to clear an optional field, or --clear-salary to remove the salary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		patch, err := patchFromFlags(cmd)
		if err != nil {
			return err
		}
		return wire.ApplicationAdapter().Update(cliContext(), id, patch)
	},
}

var appRoadmapCmd = &cobra.Command{
	Use:   "roadmap [application-id]",
	Short: "Show or edit roadmap milestones",
	Long: `Show the roadmap of an application, or record milestone dates.

Examples:
  jobtrack app roadmap 3
  jobtrack app roadmap 3 --set phone_interview=2024-03-02
  jobtrack app roadmap 3 --set "Onsite Interview=2024-03-10" --set offer_received=`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		assignments, _ := cmd.Flags().GetStringArray("set")
		ctx := cliContext()
		adapter := wire.ApplicationAdapter()

		if len(assignments) > 0 {
			stages, err := parseStageAssignments(assignments)
			if err != nil {
				return err
			}
			if err := adapter.Update(ctx, id, application.Patch{Stages: stages}); err != nil {
				return err
			}
		}
		return adapter.Roadmap(ctx, id)
	},
}

var appDeleteCmd = &cobra.Command{
	Use:   "delete [application-id]",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return wire.ApplicationAdapter().Delete(cliContext(), id)
	},
}

var appRemindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List applications with a reminder due",
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf := time.Now()
		if raw, _ := cmd.Flags().GetString("as-of"); raw != "" {
			parsed, err := application.ParseDate(raw)
			if err != nil {
				return fmt.Errorf("invalid --as-of date %q: expected YYYY-MM-DD", raw)
			}
			asOf = parsed
		}
		return wire.ApplicationAdapter().Reminders(cliContext(), asOf)
	},
}

var appHistoryCmd = &cobra.Command{
	Use:   "history [application-id]",
	Short: "Show the change history of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return wire.ApplicationAdapter().History(cliContext(), id)
	},
}

func init() {
	addApplicationFlags(appAddCmd)
	addApplicationFlags(appUpdateCmd)
	appUpdateCmd.Flags().Bool("clear-salary", false, "Remove the salary offered")

	appListCmd.Flags().String("sort", "", "Sort by field (id, company, position, date_applied, status, location, reminder_date, salary_offered)")
	appListCmd.Flags().Bool("desc", false, "Sort descending")
	appListCmd.Flags().StringP("status", "s", "", "Filter by status")
	appListCmd.Flags().StringP("company", "c", "", "Filter by company (substring match)")

	appRoadmapCmd.Flags().StringArray("set", nil, "Set a milestone date as stage=YYYY-MM-DD (empty date clears)")
	appRemindersCmd.Flags().String("as-of", "", "Reference date (YYYY-MM-DD, default today)")

	appCmd.AddCommand(appAddCmd)
	appCmd.AddCommand(appListCmd)
	appCmd.AddCommand(appShowCmd)
	appCmd.AddCommand(appUpdateCmd)
	appCmd.AddCommand(appRoadmapCmd)
	appCmd.AddCommand(appDeleteCmd)
	appCmd.AddCommand(appRemindersCmd)
	appCmd.AddCommand(appHistoryCmd)
}

// addApplicationFlags registers the editable application fields on cmd.
func addApplicationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("company", "c", "", "Company name")
	cmd.Flags().StringP("position", "p", "", "Position title")
	cmd.Flags().StringP("date", "d", "", "Date applied (YYYY-MM-DD)")
	cmd.Flags().StringP("status", "s", "", "Status (Applied, Interview Scheduled, Offer Received, Rejected, Withdrawn, Awaiting Response)")
	cmd.Flags().StringP("location", "l", "", "Location, e.g. \"Berlin, Germany\"")
	cmd.Flags().StringP("notes", "n", "", "Free-form notes")
	cmd.Flags().StringP("reminder", "r", "", "Reminder date (YYYY-MM-DD)")
	cmd.Flags().Float64("salary", 0, "Salary offered")
	cmd.Flags().String("job-description", "", "Job description")
	cmd.Flags().String("culture", "", "Company culture notes")
	cmd.Flags().String("interviewers", "", "Interviewer names")
}

// AppCmd returns the app command
func AppCmd() *cobra.Command {
	return appCmd
}

// applicationFromFlags builds a new application from the add flags.
// Validation is left to the service.
func applicationFromFlags(cmd *cobra.Command) (*application.Application, error) {
	flags := cmd.Flags()
	app := &application.Application{}
	app.Company, _ = flags.GetString("company")
	app.Position, _ = flags.GetString("position")
	app.DateApplied, _ = flags.GetString("date")
	app.Location, _ = flags.GetString("location")
	app.Notes, _ = flags.GetString("notes")
	app.ReminderDate, _ = flags.GetString("reminder")
	app.JobDescription, _ = flags.GetString("job-description")
	app.CompanyCulture, _ = flags.GetString("culture")
	app.InterviewerNames, _ = flags.GetString("interviewers")

	if raw, _ := flags.GetString("status"); raw != "" {
		status, err := application.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		app.Status = status
	}
	if flags.Changed("salary") {
		salary, _ := flags.GetFloat64("salary")
		app.SalaryOffered = &salary
	}
	return app, nil
}

// prefillApplication fills the fields the user left blank from settings.
// reminderSet reports whether --reminder was passed at all.
func prefillApplication(app *application.Application, reminderSet bool, settings *config.Settings, today time.Time) {
	if app.DateApplied == "" {
		app.DateApplied = application.FormatDate(today)
	}
	if app.Status == "" {
		app.Status = application.Status(settings.DefaultStatus)
	}
	if !reminderSet && settings.ReminderDays > 0 {
		app.ReminderDate = application.FormatDate(today.AddDate(0, 0, settings.ReminderDays))
	}
}

// patchFromFlags collects only the flags the user explicitly set.
func patchFromFlags(cmd *cobra.Command) (application.Patch, error) {
	flags := cmd.Flags()
	var patch application.Patch

	stringFlags := []struct {
		name string
		dst  **string
	}{
		{"company", &patch.Company},
		{"position", &patch.Position},
		{"date", &patch.DateApplied},
		{"location", &patch.Location},
		{"notes", &patch.Notes},
		{"reminder", &patch.ReminderDate},
		{"job-description", &patch.JobDescription},
		{"culture", &patch.CompanyCulture},
		{"interviewers", &patch.InterviewerNames},
	}
	for _, f := range stringFlags {
		if flags.Changed(f.name) {
			v, _ := flags.GetString(f.name)
			*f.dst = &v
		}
	}

	if flags.Changed("status") {
		raw, _ := flags.GetString("status")
		status, err := application.ParseStatus(raw)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	clearSalary, _ := flags.GetBool("clear-salary")
	if clearSalary && flags.Changed("salary") {
		return patch, fmt.Errorf("--salary and --clear-salary cannot be used together")
	}
	patch.ClearSalary = clearSalary
	if flags.Changed("salary") {
		salary, _ := flags.GetFloat64("salary")
		patch.SalaryOffered = &salary
	}

	return patch, nil
}

func listOptionsFromFlags(cmd *cobra.Command) (cliadapter.ListOptions, error) {
	var opts cliadapter.ListOptions
	flags := cmd.Flags()

	if raw, _ := flags.GetString("sort"); raw != "" {
		field, err := application.ParseSortField(raw)
		if err != nil {
			return opts, err
		}
		opts.SortField = field
	}
	opts.Descending, _ = flags.GetBool("desc")

	if raw, _ := flags.GetString("status"); raw != "" {
		status, err := application.ParseStatus(raw)
		if err != nil {
			return opts, err
		}
		opts.Filters.Status = status
	}
	company, _ := flags.GetString("company")
	opts.Filters.Company = strings.TrimSpace(company)

	return opts, nil
}

// parseStageAssignments turns "stage=date" pairs into a roadmap patch.
func parseStageAssignments(assignments []string) (map[application.Stage]string, error) {
	stages := make(map[application.Stage]string, len(assignments))
	for _, a := range assignments {
		key, date, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected stage=YYYY-MM-DD", a)
		}
		stage, err := application.ParseStage(key)
		if err != nil {
			return nil, err
		}
		stages[stage] = strings.TrimSpace(date)
	}
	return stages, nil
}
