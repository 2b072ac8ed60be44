package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/ports/primary"
)

// ApplicationAdapter is a thin adapter that translates CLI operations to ApplicationService calls.
type ApplicationAdapter struct {
	service primary.ApplicationService
	out     io.Writer
}

// NewApplicationAdapter creates a new ApplicationAdapter with the given service.
func NewApplicationAdapter(service primary.ApplicationService, out io.Writer) *ApplicationAdapter {
	return &ApplicationAdapter{
		service: service,
		out:     out,
	}
}

// Create adds a new application.
func (a *ApplicationAdapter) Create(ctx context.Context, app *application.Application) error {
	created, err := a.service.CreateApplication(ctx, app)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created application %d: %s - %s\n", created.ID, created.Company, created.Position)
	if created.ReminderDate != "" {
		fmt.Fprintf(a.out, "  Reminder set for %s\n", created.ReminderDate)
	}
	return nil
}

// ListOptions controls which applications are listed and in what order.
type ListOptions struct {
	Filters    primary.ApplicationFilters
	SortField  application.SortField // empty keeps insertion order
	Descending bool
}

// List prints applications as a table.
func (a *ApplicationAdapter) List(ctx context.Context, opts ListOptions) error {
	apps, err := a.service.ListApplications(ctx, opts.Filters)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	if opts.SortField != "" {
		apps = application.Sort(apps, opts.SortField, !opts.Descending)
	}

	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications found")
		return nil
	}

	a.printTable(apps)
	return nil
}

// Show prints every field of one application.
func (a *ApplicationAdapter) Show(ctx context.Context, id int64) error {
	app, err := a.service.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nApplication: %d\n", app.ID)
	fmt.Fprintf(a.out, "Company:       %s\n", app.Company)
	fmt.Fprintf(a.out, "Position:      %s\n", app.Position)
	fmt.Fprintf(a.out, "Status:        %s\n", StatusLabel(app.Status, 0))
	fmt.Fprintf(a.out, "Date Applied:  %s\n", app.DateApplied)
	fmt.Fprintf(a.out, "Location:      %s\n", orDash(app.Location))
	fmt.Fprintf(a.out, "Reminder:      %s\n", orDash(app.ReminderDate))
	fmt.Fprintf(a.out, "Salary:        %s\n", formatSalary(app.SalaryOffered))
	if app.InterviewerNames != "" {
		fmt.Fprintf(a.out, "Interviewers:  %s\n", app.InterviewerNames)
	}
	if app.Notes != "" {
		fmt.Fprintf(a.out, "Notes:         %s\n", app.Notes)
	}
	if app.JobDescription != "" {
		fmt.Fprintf(a.out, "\nJob Description:\n%s\n", app.JobDescription)
	}
	if app.CompanyCulture != "" {
		fmt.Fprintf(a.out, "\nCompany Culture:\n%s\n", app.CompanyCulture)
	}
	fmt.Fprintln(a.out)
	a.printRoadmap(app)
	return nil
}

// Update applies a patch and reports the result.
func (a *ApplicationAdapter) Update(ctx context.Context, id int64, patch application.Patch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update: specify at least one field flag")
	}

	updated, err := a.service.UpdateApplication(ctx, id, patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Application %d updated (%s)\n", updated.ID, updated.Status)
	return nil
}

// Roadmap prints the roadmap of one application.
func (a *ApplicationAdapter) Roadmap(ctx context.Context, id int64) error {
	app, err := a.service.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\n%s - %s\n", app.Company, app.Position)
	a.printRoadmap(app)
	return nil
}

// Delete deletes an application.
func (a *ApplicationAdapter) Delete(ctx context.Context, id int64) error {
	app, err := a.service.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	if err := a.service.DeleteApplication(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted application %d: %s - %s\n", app.ID, app.Company, app.Position)
	return nil
}

// Reminders prints applications whose follow-up is due by asOf.
func (a *ApplicationAdapter) Reminders(ctx context.Context, asOf time.Time) error {
	apps, err := a.service.ListDueReminders(ctx, asOf)
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		fmt.Fprintf(a.out, "No reminders due by %s\n", application.FormatDate(asOf))
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-12s %-22s %-22s %s\n", "ID", "REMINDER", "COMPANY", "POSITION", "STATUS")
	fmt.Fprintln(a.out, rule)
	for _, app := range apps {
		fmt.Fprintf(a.out, "%-6d %-12s %-22s %-22s %s\n",
			app.ID, app.ReminderDate, truncate(app.Company, 22), truncate(app.Position, 22), StatusLabel(app.Status, 0))
	}
	fmt.Fprintln(a.out)
	return nil
}

// History prints the audit trail of an application.
func (a *ApplicationAdapter) History(ctx context.Context, id int64) error {
	entries, err := a.service.GetHistory(ctx, id)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(a.out, "No history for application %d\n", id)
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-6s %-8s %s\n", "WHEN", "ACTOR", "ACTION", "CHANGE")
	fmt.Fprintln(a.out, rule)
	for _, e := range entries {
		change := ""
		if e.FieldName != "" {
			change = fmt.Sprintf("%s: %q → %q", e.FieldName, e.OldValue, e.NewValue)
		}
		fmt.Fprintf(a.out, "%-20s %-6s %-8s %s\n", e.CreatedAt, orDash(e.Actor), e.Action, change)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *ApplicationAdapter) printTable(apps []*application.Application) {
	fmt.Fprintf(a.out, "\n%-6s %-22s %-22s %-12s %-20s %s\n", "ID", "COMPANY", "POSITION", "APPLIED", "STATUS", "LOCATION")
	fmt.Fprintln(a.out, rule)
	for _, app := range apps {
		fmt.Fprintf(a.out, "%-6d %-22s %-22s %-12s %s %s\n",
			app.ID,
			truncate(app.Company, 22),
			truncate(app.Position, 22),
			app.DateApplied,
			StatusLabel(app.Status, 20),
			app.Location,
		)
	}
	fmt.Fprintln(a.out)
}

func (a *ApplicationAdapter) printRoadmap(app *application.Application) {
	fmt.Fprintln(a.out, "Roadmap:")
	for _, stage := range application.Stages() {
		fmt.Fprintf(a.out, "  %-22s %s\n", stage.Label(), orNotYet(app.Roadmap.Get(stage)))
	}
	fmt.Fprintln(a.out)
}
