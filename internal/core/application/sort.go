package application

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SortField names a column applications can be ordered by.
type SortField string

const (
	SortByID            SortField = "id"
	SortByCompany       SortField = "company"
	SortByPosition      SortField = "position"
	SortByDateApplied   SortField = "date_applied"
	SortByStatus        SortField = "status"
	SortByLocation      SortField = "location"
	SortByReminderDate  SortField = "reminder_date"
	SortBySalaryOffered SortField = "salary_offered"
)

var sortFields = []SortField{
	SortByID, SortByCompany, SortByPosition, SortByDateApplied,
	SortByStatus, SortByLocation, SortByReminderDate, SortBySalaryOffered,
}

// ParseSortField resolves a field name such as "company" or "Date Applied".
func ParseSortField(raw string) (SortField, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
	norm = strings.ReplaceAll(norm, "-", "_")
	for _, f := range sortFields {
		if string(f) == norm {
			return f, nil
		}
	}
	names := make([]string, len(sortFields))
	for i, f := range sortFields {
		names[i] = string(f)
	}
	return "", &ValidationError{
		Field:  "sort",
		Reason: fmt.Sprintf("unknown sort field %q (valid: %s)", raw, strings.Join(names, ", ")),
	}
}

// Sort returns a new slice ordered by field. The sort is stable in both
// directions: applications with equal keys keep their input order.
// Text fields compare lexicographically; date fields compare chronologically
// with unset or malformed dates ordered before every valid date.
func Sort(apps []*Application, field SortField, ascending bool) []*Application {
	out := slices.Clone(apps)
	compare := comparator(field)
	slices.SortStableFunc(out, func(a, b *Application) int {
		if ascending {
			return compare(a, b)
		}
		return compare(b, a)
	})
	return out
}

func comparator(field SortField) func(a, b *Application) int {
	switch field {
	case SortByCompany:
		return func(a, b *Application) int { return strings.Compare(a.Company, b.Company) }
	case SortByPosition:
		return func(a, b *Application) int { return strings.Compare(a.Position, b.Position) }
	case SortByStatus:
		return func(a, b *Application) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case SortByLocation:
		return func(a, b *Application) int { return strings.Compare(a.Location, b.Location) }
	case SortByDateApplied:
		return func(a, b *Application) int { return compareDates(a.DateApplied, b.DateApplied) }
	case SortByReminderDate:
		return func(a, b *Application) int { return compareDates(a.ReminderDate, b.ReminderDate) }
	case SortBySalaryOffered:
		return func(a, b *Application) int { return compareSalary(a.SalaryOffered, b.SalaryOffered) }
	default:
		return func(a, b *Application) int { return cmp.Compare(a.ID, b.ID) }
	}
}

func compareDates(a, b string) int {
	ta, okA := sortableDate(a)
	tb, okB := sortableDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return ta.Compare(tb)
}

func sortableDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func compareSalary(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}
