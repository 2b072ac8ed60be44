package stats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/example/jobtrack/internal/core/application"
)

func app(company, position, date string, status application.Status) *application.Application {
	return &application.Application{
		Company:     company,
		Position:    position,
		DateApplied: date,
		Status:      status,
		Location:    "Remote",
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)

	if s.TotalApplications != 0 {
		t.Errorf("TotalApplications = %d", s.TotalApplications)
	}
	if s.SuccessRate != 0 || s.AvgApplicationsPerMonth != 0 || s.AvgResponseTime != 0 {
		t.Errorf("expected zero rates, got %+v", s)
	}
	if s.MostAppliedCompany != "" || s.MostCommonPosition != "" {
		t.Errorf("expected empty leaders, got %q / %q", s.MostAppliedCompany, s.MostCommonPosition)
	}
	if len(s.PerStatus) != 6 {
		t.Fatalf("expected all six statuses, got %d", len(s.PerStatus))
	}
	for _, c := range s.PerStatus {
		if c.Count != 0 {
			t.Errorf("status %s count = %d", c.Key, c.Count)
		}
	}
	if len(s.PerMonth) != 0 || len(s.PerCompany) != 0 || len(s.PerPosition) != 0 {
		t.Errorf("expected empty groupings")
	}
}

func TestCompute_EmptyGroupingsEncodeAsArrays(t *testing.T) {
	data, err := json.Marshal(Compute(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("expected empty arrays, got %s", data)
	}
	for _, key := range []string{
		`"applications_per_month":[]`,
		`"applications_per_company":[]`,
		`"applications_per_position":[]`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected %s in %s", key, data)
		}
	}
}

func TestCompute_StatusAndSuccessRate(t *testing.T) {
	apps := []*application.Application{
		app("A", "Dev", "2024-01-01", application.StatusApplied),
		app("B", "Dev", "2024-01-02", application.StatusApplied),
		app("C", "Dev", "2024-01-03", application.StatusOfferReceived),
		app("D", "Dev", "2024-01-04", application.StatusRejected),
	}

	s := Compute(apps)

	if got := s.PerStatus.Get("Applied"); got != 2 {
		t.Errorf("Applied = %d, want 2", got)
	}
	if got := s.PerStatus.Get("Withdrawn"); got != 0 {
		t.Errorf("Withdrawn = %d, want 0", got)
	}
	if s.SuccessRate != 25.0 {
		t.Errorf("SuccessRate = %v, want 25.0", s.SuccessRate)
	}
	if s.PerStatus[0].Key != "Applied" || s.PerStatus[5].Key != "Awaiting Response" {
		t.Errorf("statuses not in canonical order: %v", s.PerStatus.Keys())
	}
}

func TestCompute_SameMonth(t *testing.T) {
	apps := []*application.Application{
		app("A", "Dev", "2024-03-01", application.StatusApplied),
		app("B", "Dev", "2024-03-15", application.StatusApplied),
		app("C", "Dev", "2024-03-31", application.StatusApplied),
	}

	s := Compute(apps)

	if len(s.PerMonth) != 1 {
		t.Fatalf("expected one month, got %v", s.PerMonth)
	}
	if s.PerMonth[0].Key != "2024-03" || s.PerMonth[0].Count != 3 {
		t.Errorf("unexpected month entry %+v", s.PerMonth[0])
	}
	if s.AvgApplicationsPerMonth != 3.0 {
		t.Errorf("AvgApplicationsPerMonth = %v, want 3.0", s.AvgApplicationsPerMonth)
	}
}

func TestCompute_MonthsChronological(t *testing.T) {
	apps := []*application.Application{
		app("A", "Dev", "2024-02-10", application.StatusApplied),
		app("B", "Dev", "2023-11-01", application.StatusApplied),
		app("C", "Dev", "2024-01-20", application.StatusApplied),
		app("D", "Dev", "not-a-date", application.StatusApplied),
	}

	s := Compute(apps)

	want := []string{"2023-11", "2024-01", "2024-02"}
	got := s.PerMonth.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if s.TotalApplications != 4 {
		t.Errorf("malformed date must still count toward total, got %d", s.TotalApplications)
	}
	if s.AvgApplicationsPerMonth != 4.0/3.0 {
		t.Errorf("AvgApplicationsPerMonth = %v", s.AvgApplicationsPerMonth)
	}
}

func TestCompute_RankedCompanies(t *testing.T) {
	apps := []*application.Application{
		app("Mono", "Dev", "2024-01-01", application.StatusApplied),
		app("Acme", "SRE", "2024-01-01", application.StatusApplied),
		app("Zeta", "Dev", "2024-01-01", application.StatusApplied),
		app("Acme", "Dev", "2024-01-01", application.StatusApplied),
		app("Zeta", "SRE", "2024-01-01", application.StatusApplied),
		app("Beta", "QA", "2024-01-01", application.StatusApplied),
	}

	s := Compute(apps)

	want := []Count{{"Acme", 2}, {"Zeta", 2}, {"Mono", 1}, {"Beta", 1}}
	if len(s.PerCompany) != len(want) {
		t.Fatalf("got %v", s.PerCompany)
	}
	for i := range want {
		if s.PerCompany[i] != want[i] {
			t.Fatalf("got %v, want %v", s.PerCompany, want)
		}
	}
	if s.MostAppliedCompany != "Acme" {
		t.Errorf("MostAppliedCompany = %q", s.MostAppliedCompany)
	}
	if s.MostCommonPosition != "Dev" {
		t.Errorf("MostCommonPosition = %q", s.MostCommonPosition)
	}
	if top := s.PerCompany.Top(2); len(top) != 2 || top[1].Key != "Zeta" {
		t.Errorf("Top(2) = %v", top)
	}
}

func TestCompute_ResponseTime(t *testing.T) {
	responded := app("A", "Dev", "2024-01-01", application.StatusInterviewScheduled)
	responded.Roadmap.PhoneInterview = "2024-01-08"

	silent := app("B", "Dev", "2024-01-01", application.StatusApplied)

	s := Compute([]*application.Application{responded, silent})
	if s.AvgResponseTime != 7.0 {
		t.Errorf("AvgResponseTime = %v, want 7.0", s.AvgResponseTime)
	}
}

func TestResponseDays(t *testing.T) {
	tests := []struct {
		name    string
		applied string
		roadmap application.Roadmap
		want    float64
		wantOK  bool
	}{
		{
			name:    "earliest stage wins",
			applied: "2024-01-01",
			roadmap: application.Roadmap{TechnicalInterview: "2024-01-20", ResumeScreened: "2024-01-04"},
			want:    3,
			wantOK:  true,
		},
		{
			name:    "submission stage is not a response",
			applied: "2024-01-01",
			roadmap: application.Roadmap{ApplicationSubmitted: "2024-01-02"},
		},
		{
			name:    "stage on the application day is ignored",
			applied: "2024-01-01",
			roadmap: application.Roadmap{ResumeScreened: "2024-01-01", OfferReceived: "2024-02-01"},
			want:    31,
			wantOK:  true,
		},
		{
			name:    "malformed stage is ignored",
			applied: "2024-01-01",
			roadmap: application.Roadmap{PhoneInterview: "soon"},
		},
		{
			name:    "malformed date applied",
			applied: "yesterday",
			roadmap: application.Roadmap{PhoneInterview: "2024-01-08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := app("A", "Dev", tt.applied, application.StatusApplied)
			a.Roadmap = tt.roadmap

			got, ok := ResponseDays(a)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("days = %v, want %v", got, tt.want)
			}
		})
	}
}
