package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

type JobDataRequest struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Salary       string   `json:"salary" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements" validate:"required"`
	Benefits     []string `json:"benefits" validate:"required"`
	CompanyLogo  string   `json:"companyLogo" validate:"required"`
}

// DecisionRequest is one swipe. Requirements and benefits must be present
// but may be empty arrays.
type DecisionRequest struct {
	JobID   string         `json:"jobId" validate:"required"`
	Action  string         `json:"action" validate:"required,oneof=apply reject"`
	JobData JobDataRequest `json:"jobData"`
}

func (r JobDataRequest) Metadata() job.Metadata {
	return job.Metadata{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Salary:       r.Salary,
		Type:         r.Type,
		Description:  r.Description,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
		CompanyLogo:  r.CompanyLogo,
	}
}

type EmployerResponseResponse struct {
	ID           uuid.UUID `json:"id"`
	ResponseType string    `json:"responseType"`
	Content      string    `json:"content"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

type ApplicationResponse struct {
	ID                uuid.UUID                  `json:"id"`
	UserID            uuid.UUID                  `json:"userId"`
	JobID             uuid.UUID                  `json:"jobId"`
	CVID              uuid.UUID                  `json:"cvId"`
	Status            string                     `json:"status"`
	AppliedAt         time.Time                  `json:"appliedAt"`
	Job               *JobResponse               `json:"job"`
	EmployerResponses []EmployerResponseResponse `json:"employerResponses"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	out := ApplicationResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		JobID:             a.JobID,
		CVID:              a.CVID,
		Status:            string(a.Status),
		AppliedAt:         a.AppliedAt,
		EmployerResponses: make([]EmployerResponseResponse, 0, len(a.Responses)),
	}
	if a.Job != nil {
		j := NewJobResponse(*a.Job)
		out.Job = &j
	}
	for _, r := range a.Responses {
		out.EmployerResponses = append(out.EmployerResponses, EmployerResponseResponse{
			ID:           r.ID,
			ResponseType: r.ResponseType,
			Content:      r.Content,
			ReceivedAt:   r.ReceivedAt,
		})
	}
	return out
}

func NewApplicationListResponse(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
