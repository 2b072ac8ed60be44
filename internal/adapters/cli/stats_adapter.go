package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/jobtrack/internal/core/application"
	"github.com/example/jobtrack/internal/core/stats"
	"github.com/example/jobtrack/internal/ports/primary"
)

// StatsAdapter renders statistics for the terminal.
type StatsAdapter struct {
	service primary.StatsService
	out     io.Writer
}

// NewStatsAdapter creates a new StatsAdapter with the given service.
func NewStatsAdapter(service primary.StatsService, out io.Writer) *StatsAdapter {
	return &StatsAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the statistics. top limits the company and position rankings;
// asJSON prints the full bundle as JSON instead.
func (a *StatsAdapter) Show(ctx context.Context, top int, asJSON bool) error {
	st, err := a.service.ComputeStatistics(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	fmt.Fprintf(a.out, "\nTotal applications:       %d\n", st.TotalApplications)
	fmt.Fprintf(a.out, "Most applied company:     %s\n", orDash(st.MostAppliedCompany))
	fmt.Fprintf(a.out, "Most common position:     %s\n", orDash(st.MostCommonPosition))
	fmt.Fprintf(a.out, "Avg applications / month: %.2f\n", st.AvgApplicationsPerMonth)
	fmt.Fprintf(a.out, "Success rate:             %.2f%%\n", st.SuccessRate)
	fmt.Fprintf(a.out, "Avg response time:        %.2f days\n", st.AvgResponseTime)

	fmt.Fprintln(a.out, "\nBy status:")
	for _, c := range st.PerStatus {
		fmt.Fprintf(a.out, "  %s %d\n", StatusLabel(application.Status(c.Key), 20), c.Count)
	}

	a.printCounts("By month:", st.PerMonth)
	a.printCounts("Top companies:", st.PerCompany.Top(top))
	a.printCounts("Top positions:", st.PerPosition.Top(top))
	fmt.Fprintln(a.out)
	return nil
}

func (a *StatsAdapter) printCounts(title string, counts stats.Counts) {
	fmt.Fprintf(a.out, "\n%s\n", title)
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(a.out, "  %-20s %d\n", truncate(c.Key, 20), c.Count)
	}
}
