package application

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an application.
type Status string

// Status values, in canonical display order.
const (
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusOfferReceived      Status = "Offer Received"
	StatusRejected           Status = "Rejected"
	StatusWithdrawn          Status = "Withdrawn"
	StatusAwaitingResponse   Status = "Awaiting Response"
)

var statuses = []Status{
	StatusApplied,
	StatusInterviewScheduled,
	StatusOfferReceived,
	StatusRejected,
	StatusWithdrawn,
	StatusAwaitingResponse,
}

// Statuses returns every status in canonical order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus resolves user input to a Status. Matching ignores case and
// accepts '-' or '_' in place of spaces, so "offer-received" works on the
// command line.
func ParseStatus(raw string) (Status, error) {
	norm := normalizeStatus(raw)
	for _, v := range statuses {
		if normalizeStatus(string(v)) == norm {
			return v, nil
		}
	}
	return "", &ValidationError{
		Field:  "status",
		Reason: fmt.Sprintf("invalid status %q (valid: %s)", raw, statusList()),
	}
}

func normalizeStatus(raw string) string {
	r := strings.NewReplacer("-", " ", "_", " ")
	return strings.Join(strings.Fields(strings.ToLower(r.Replace(raw))), " ")
}

func statusList() string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
