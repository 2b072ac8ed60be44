package application

import (
	"fmt"
	"strings"
)

// Stage is one milestone on an application's roadmap.
type Stage string

const (
	StageApplicationSubmitted Stage = "application_submitted"
	StageResumeScreened       Stage = "resume_screened"
	StagePhoneInterview       Stage = "phone_interview"
	StageTechnicalInterview   Stage = "technical_interview"
	StageOnsiteInterview      Stage = "onsite_interview"
	StageOfferReceived        Stage = "offer_received"
	StageOfferAccepted        Stage = "offer_accepted"
	StageOfferRejected        Stage = "offer_rejected"
)

var stages = []Stage{
	StageApplicationSubmitted,
	StageResumeScreened,
	StagePhoneInterview,
	StageTechnicalInterview,
	StageOnsiteInterview,
	StageOfferReceived,
	StageOfferAccepted,
	StageOfferRejected,
}

var stageLabels = map[Stage]string{
	StageApplicationSubmitted: "Application Submitted",
	StageResumeScreened:       "Resume Screened",
	StagePhoneInterview:       "Phone Interview",
	StageTechnicalInterview:   "Technical Interview",
	StageOnsiteInterview:      "Onsite Interview",
	StageOfferReceived:        "Offer Received",
	StageOfferAccepted:        "Offer Accepted",
	StageOfferRejected:        "Offer Rejected",
}

// Stages returns all roadmap stages in progression order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// ResponseStages returns the stages that count as a response from the
// employer, i.e. every stage after the submission itself.
func ResponseStages() []Stage {
	return Stages()[1:]
}

// Label returns the human readable stage name.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseStage accepts either the snake_case key or the display label.
func ParseStage(raw string) (Stage, error) {
	norm := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_"), "-", "_")
	for _, s := range stages {
		if string(s) == norm {
			return s, nil
		}
	}
	return "", &ValidationError{Field: "stage", Reason: fmt.Sprintf("unknown roadmap stage %q", raw)}
}

// Roadmap holds the optional milestone dates of an application.
type Roadmap struct {
	ApplicationSubmitted string
	ResumeScreened       string
	PhoneInterview       string
	TechnicalInterview   string
	OnsiteInterview      string
	OfferReceived        string
	OfferAccepted        string
	OfferRejected        string
}

func (r *Roadmap) field(s Stage) *string {
	switch s {
	case StageApplicationSubmitted:
		return &r.ApplicationSubmitted
	case StageResumeScreened:
		return &r.ResumeScreened
	case StagePhoneInterview:
		return &r.PhoneInterview
	case StageTechnicalInterview:
		return &r.TechnicalInterview
	case StageOnsiteInterview:
		return &r.OnsiteInterview
	case StageOfferReceived:
		return &r.OfferReceived
	case StageOfferAccepted:
		return &r.OfferAccepted
	case StageOfferRejected:
		return &r.OfferRejected
	}
	return nil
}

// Get returns the date recorded for a stage, or "".
func (r Roadmap) Get(s Stage) string {
	if p := r.field(s); p != nil {
		return *p
	}
	return ""
}

// Set records the date for a stage. Unknown stages are ignored.
func (r *Roadmap) Set(s Stage, date string) {
	if p := r.field(s); p != nil {
		*p = date
	}
}
