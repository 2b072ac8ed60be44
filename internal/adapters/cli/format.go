// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/example/jobtrack/internal/core/application"
)

const rule = "────────────────────────────────────────────────────────────────────────────────"

var statusColors = map[application.Status]*color.Color{
	application.StatusApplied:            color.New(color.FgHiBlack),
	application.StatusInterviewScheduled: color.New(color.FgBlue),
	application.StatusOfferReceived:      color.New(color.FgGreen),
	application.StatusRejected:           color.New(color.FgRed),
	application.StatusWithdrawn:          color.New(color.Faint),
	application.StatusAwaitingResponse:   color.New(color.FgCyan),
}

// StatusLabel renders a status padded to width and coloured by status.
func StatusLabel(s application.Status, width int) string {
	text := fmt.Sprintf("%-*s", width, s)
	if c, ok := statusColors[s]; ok {
		return c.Sprint(text)
	}
	return text
}

func orNotYet(date string) string {
	if date == "" {
		return "Not yet"
	}
	return date
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatSalary(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
