// Package stats derives aggregate metrics from a snapshot of applications.
// Compute is a pure function: it reads only its argument and keeps no state,
// so callers recompute it whenever the record set changes.
package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/example/jobtrack/internal/core/application"
)

// Count is one entry of an ordered mapping.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts is an ordered key→count mapping. The order carries meaning
// (chronological for months, ranked for companies and positions).
type Counts []Count

// Get returns the count for key, or 0.
func (c Counts) Get(key string) int {
	for _, e := range c {
		if e.Key == key {
			return e.Count
		}
	}
	return 0
}

// Keys returns the keys in order.
func (c Counts) Keys() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Key
	}
	return out
}

// Top returns at most n leading entries.
func (c Counts) Top(n int) Counts {
	if n < 0 || n >= len(c) {
		return c
	}
	return c[:n]
}

// Statistics is the fixed bundle of derived metrics.
//
// PerStatus always lists all six statuses in canonical order, including
// those with a zero count.
type Statistics struct {
	TotalApplications       int     `json:"total_applications"`
	PerStatus               Counts  `json:"applications_per_status"`
	PerMonth                Counts  `json:"applications_per_month"`
	PerCompany              Counts  `json:"applications_per_company"`
	PerPosition             Counts  `json:"applications_per_position"`
	MostAppliedCompany      string  `json:"most_applied_company"`
	MostCommonPosition      string  `json:"most_common_position"`
	AvgApplicationsPerMonth float64 `json:"avg_applications_per_month"`
	SuccessRate             float64 `json:"success_rate"`
	AvgResponseTime         float64 `json:"avg_response_time"`
}

// Compute derives Statistics from apps. It never fails: records with a
// malformed date_applied are left out of the month and response-time
// aggregates but still count toward the totals.
func Compute(apps []*application.Application) Statistics {
	s := Statistics{
		TotalApplications: len(apps),
		PerStatus:         perStatus(apps),
		PerMonth:          perMonth(apps),
		PerCompany:        ranked(apps, func(a *application.Application) string { return a.Company }),
		PerPosition:       ranked(apps, func(a *application.Application) string { return a.Position }),
	}

	if len(s.PerCompany) > 0 {
		s.MostAppliedCompany = s.PerCompany[0].Key
	}
	if len(s.PerPosition) > 0 {
		s.MostCommonPosition = s.PerPosition[0].Key
	}

	if months := len(s.PerMonth); months > 0 {
		s.AvgApplicationsPerMonth = float64(s.TotalApplications) / float64(months)
	}

	if s.TotalApplications > 0 {
		offers := s.PerStatus.Get(string(application.StatusOfferReceived))
		s.SuccessRate = float64(offers) / float64(s.TotalApplications) * 100
	}

	s.AvgResponseTime = avgResponseTime(apps)
	return s
}

func perStatus(apps []*application.Application) Counts {
	counts := make(map[application.Status]int)
	for _, a := range apps {
		counts[a.Status]++
	}
	out := make(Counts, 0, len(application.Statuses()))
	for _, st := range application.Statuses() {
		out = append(out, Count{Key: string(st), Count: counts[st]})
	}
	return out
}

func perMonth(apps []*application.Application) Counts {
	counts := make(map[string]int)
	for _, a := range apps {
		t, err := application.ParseDate(a.DateApplied)
		if err != nil {
			continue
		}
		counts[application.MonthKey(t)]++
	}
	out := make(Counts, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, Count: n})
	}
	// YYYY-MM keys sort chronologically as text.
	slices.SortFunc(out, func(a, b Count) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// ranked counts key(a) and orders by descending count, breaking ties by the
// order in which keys were first seen.
func ranked(apps []*application.Application, key func(*application.Application) string) Counts {
	index := make(map[string]int)
	out := Counts{}
	for _, a := range apps {
		k := key(a)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Count{Key: k, Count: 1})
	}
	slices.SortStableFunc(out, func(a, b Count) int { return b.Count - a.Count })
	return out
}

// avgResponseTime averages, over qualifying records, the days between
// date_applied and the earliest response stage dated strictly after it.
func avgResponseTime(apps []*application.Application) float64 {
	var total float64
	var n int
	for _, a := range apps {
		days, ok := ResponseDays(a)
		if !ok {
			continue
		}
		total += days
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// ResponseDays returns the days from date_applied to the first employer
// response, and false when the record has no usable response stage.
func ResponseDays(a *application.Application) (float64, bool) {
	applied, err := application.ParseDate(a.DateApplied)
	if err != nil {
		return 0, false
	}

	var first time.Time
	found := false
	for _, st := range application.ResponseStages() {
		raw := a.Roadmap.Get(st)
		if raw == "" {
			continue
		}
		t, err := application.ParseDate(raw)
		if err != nil || !t.After(applied) {
			continue
		}
		if !found || t.Before(first) {
			first = t
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return first.Sub(applied).Hours() / 24, true
}
