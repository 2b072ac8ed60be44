package application

import (
	"fmt"
	"math"
	"strings"
)

// Validate evaluates whether an application may be persisted.
// Rules:
// - Company, position and location must be non-empty
// - Status must be one of the enumerated values
// - Date applied must be a valid calendar date
// - Reminder and roadmap dates, when set, must be valid calendar dates
// - Salary offered, when set, must be a finite non-negative number
//
// The first failing rule is returned as a *ValidationError.
func Validate(a *Application) error {
	if a == nil {
		return &ValidationError{Field: "application", Reason: "is required"}
	}

	required := []struct {
		field string
		value string
	}{
		{"company", a.Company},
		{"position", a.Position},
		{"location", a.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if !a.Status.Valid() {
		return &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("invalid status %q (valid: %s)", a.Status, statusList()),
		}
	}

	if strings.TrimSpace(a.DateApplied) == "" {
		return &ValidationError{Field: "date_applied", Reason: "is required"}
	}
	if err := checkDate("date_applied", a.DateApplied); err != nil {
		return err
	}
	if a.ReminderDate != "" {
		if err := checkDate("reminder_date", a.ReminderDate); err != nil {
			return err
		}
	}
	for _, s := range stages {
		if d := a.Roadmap.Get(s); d != "" {
			if err := checkDate(string(s), d); err != nil {
				return err
			}
		}
	}

	if a.SalaryOffered != nil {
		v := *a.SalaryOffered
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &ValidationError{Field: "salary_offered", Reason: "must be a non-negative number"}
		}
	}

	return nil
}

func checkDate(field, value string) error {
	if _, err := ParseDate(value); err != nil {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", value),
		}
	}
	return nil
}
