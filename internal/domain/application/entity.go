package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

type Status string

const (
	StatusSent               Status = "SENT"
	StatusViewed             Status = "VIEWED"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusRejected           Status = "REJECTED"
	StatusOfferReceived      Status = "OFFER_RECEIVED"
)

var statuses = []Status{
	StatusSent,
	StatusViewed,
	StatusInterviewScheduled,
	StatusRejected,
	StatusOfferReceived,
}

func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Decision string

const (
	DecisionApply  Decision = "apply"
	DecisionReject Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApply || d == DecisionReject
}

// Application is one user's decision to apply to one job. There is at most
// one per (UserID, JobID).
type Application struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     uuid.UUID
	CVID      uuid.UUID
	Status    Status
	AppliedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Job       *job.Posting
	Responses []EmployerResponse
}

type EmployerResponse struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	ResponseType  string
	Content       string
	ReceivedAt    time.Time
}

// PlaceholderCVText marks a CV provisioned on first apply, before any upload.
const PlaceholderCVText = "Basic CV - needs upload"

type CV struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	OriginalText    string
	Skills          []string
	ExperienceYears int
	CreatedAt       time.Time
}
