package httpapi

import (
	"github.com/example/jobtrack/internal/core/application"
)

// applicationResponse is the wire form of an application.
type applicationResponse struct {
	ID               int64             `json:"id"`
	Company          string            `json:"company"`
	Position         string            `json:"position"`
	DateApplied      string            `json:"date_applied"`
	Status           string            `json:"status"`
	Notes            string            `json:"notes"`
	Location         string            `json:"location"`
	ReminderDate     string            `json:"reminder_date"`
	SalaryOffered    *float64          `json:"salary_offered"`
	JobDescription   string            `json:"job_description"`
	CompanyCulture   string            `json:"company_culture"`
	InterviewerNames string            `json:"interviewer_names"`
	Roadmap          map[string]string `json:"roadmap"`
}

// applicationRequest is the body of POST and PUT. Every field is written;
// absent fields become empty.
type applicationRequest struct {
	Company          string            `json:"company"`
	Position         string            `json:"position"`
	DateApplied      string            `json:"date_applied"`
	Status           string            `json:"status"`
	Notes            string            `json:"notes"`
	Location         string            `json:"location"`
	ReminderDate     string            `json:"reminder_date"`
	SalaryOffered    *float64          `json:"salary_offered"`
	JobDescription   string            `json:"job_description"`
	CompanyCulture   string            `json:"company_culture"`
	InterviewerNames string            `json:"interviewer_names"`
	Roadmap          map[string]string `json:"roadmap"`
}

// patchRequest is the body of PATCH. Only present fields change.
type patchRequest struct {
	Company          *string           `json:"company"`
	Position         *string           `json:"position"`
	DateApplied      *string           `json:"date_applied"`
	Status           *string           `json:"status"`
	Notes            *string           `json:"notes"`
	Location         *string           `json:"location"`
	ReminderDate     *string           `json:"reminder_date"`
	SalaryOffered    *float64          `json:"salary_offered"`
	ClearSalary      bool              `json:"clear_salary"`
	JobDescription   *string           `json:"job_description"`
	CompanyCulture   *string           `json:"company_culture"`
	InterviewerNames *string           `json:"interviewer_names"`
	Roadmap          map[string]string `json:"roadmap"`
}

func toResponse(app *application.Application) applicationResponse {
	roadmap := make(map[string]string, len(application.Stages()))
	for _, stage := range application.Stages() {
		roadmap[string(stage)] = app.Roadmap.Get(stage)
	}
	return applicationResponse{
		ID:               app.ID,
		Company:          app.Company,
		Position:         app.Position,
		DateApplied:      app.DateApplied,
		Status:           string(app.Status),
		Notes:            app.Notes,
		Location:         app.Location,
		ReminderDate:     app.ReminderDate,
		SalaryOffered:    app.SalaryOffered,
		JobDescription:   app.JobDescription,
		CompanyCulture:   app.CompanyCulture,
		InterviewerNames: app.InterviewerNames,
		Roadmap:          roadmap,
	}
}

func toResponses(apps []*application.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i, app := range apps {
		out[i] = toResponse(app)
	}
	return out
}

// toApplication converts a request body. An empty status is passed through
// so the service can apply its default.
func (r applicationRequest) toApplication() (*application.Application, error) {
	app := &application.Application{
		Company:          r.Company,
		Position:         r.Position,
		DateApplied:      r.DateApplied,
		Notes:            r.Notes,
		Location:         r.Location,
		ReminderDate:     r.ReminderDate,
		SalaryOffered:    r.SalaryOffered,
		JobDescription:   r.JobDescription,
		CompanyCulture:   r.CompanyCulture,
		InterviewerNames: r.InterviewerNames,
	}
	if r.Status != "" {
		status, err := application.ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
		app.Status = status
	}
	stages, err := parseStages(r.Roadmap)
	if err != nil {
		return nil, err
	}
	for stage, date := range stages {
		app.Roadmap.Set(stage, date)
	}
	return app, nil
}

func (r patchRequest) toPatch() (application.Patch, error) {
	patch := application.Patch{
		Company:          r.Company,
		Position:         r.Position,
		DateApplied:      r.DateApplied,
		Notes:            r.Notes,
		Location:         r.Location,
		ReminderDate:     r.ReminderDate,
		SalaryOffered:    r.SalaryOffered,
		ClearSalary:      r.ClearSalary,
		JobDescription:   r.JobDescription,
		CompanyCulture:   r.CompanyCulture,
		InterviewerNames: r.InterviewerNames,
	}
	if r.Status != nil {
		status, err := application.ParseStatus(*r.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}
	stages, err := parseStages(r.Roadmap)
	if err != nil {
		return patch, err
	}
	if len(stages) > 0 {
		patch.Stages = stages
	}
	return patch, nil
}

func parseStages(raw map[string]string) (map[application.Stage]string, error) {
	stages := make(map[application.Stage]string, len(raw))
	for key, date := range raw {
		stage, err := application.ParseStage(key)
		if err != nil {
			return nil, err
		}
		stages[stage] = date
	}
	return stages, nil
}
