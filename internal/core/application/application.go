// Package application contains the pure domain model for tracked job applications.
// Nothing in this package touches persistence or I/O.
package application

// Application is one tracked job application.
// Date fields hold YYYY-MM-DD strings; an empty string means the date is unset.
type Application struct {
	ID               int64
	Company          string
	Position         string
	DateApplied      string
	Status           Status
	Notes            string
	Location         string
	ReminderDate     string
	SalaryOffered    *float64
	JobDescription   string
	CompanyCulture   string
	InterviewerNames string
	Roadmap          Roadmap
}

// Clone returns a deep copy of the application.
func (a *Application) Clone() *Application {
	if a == nil {
		return nil
	}
	c := *a
	if a.SalaryOffered != nil {
		v := *a.SalaryOffered
		c.SalaryOffered = &v
	}
	return &c
}

// Patch describes a partial update. Nil fields are left untouched; a non-nil
// pointer to "" clears an optional text or date field.
type Patch struct {
	Company          *string
	Position         *string
	DateApplied      *string
	Status           *Status
	Notes            *string
	Location         *string
	ReminderDate     *string
	SalaryOffered    *float64
	ClearSalary      bool
	JobDescription   *string
	CompanyCulture   *string
	InterviewerNames *string
	Stages           map[Stage]string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Company == nil && p.Position == nil && p.DateApplied == nil &&
		p.Status == nil && p.Notes == nil && p.Location == nil &&
		p.ReminderDate == nil && p.SalaryOffered == nil && !p.ClearSalary &&
		p.JobDescription == nil && p.CompanyCulture == nil &&
		p.InterviewerNames == nil && len(p.Stages) == 0
}

// Apply writes the patch onto a copy of app and returns the copy.
func (p Patch) Apply(app *Application) *Application {
	out := app.Clone()
	setString(&out.Company, p.Company)
	setString(&out.Position, p.Position)
	setString(&out.DateApplied, p.DateApplied)
	if p.Status != nil {
		out.Status = *p.Status
	}
	setString(&out.Notes, p.Notes)
	setString(&out.Location, p.Location)
	setString(&out.ReminderDate, p.ReminderDate)
	if p.ClearSalary {
		out.SalaryOffered = nil
	} else if p.SalaryOffered != nil {
		v := *p.SalaryOffered
		out.SalaryOffered = &v
	}
	setString(&out.JobDescription, p.JobDescription)
	setString(&out.CompanyCulture, p.CompanyCulture)
	setString(&out.InterviewerNames, p.InterviewerNames)
	for stage, date := range p.Stages {
		out.Roadmap.Set(stage, date)
	}
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
