package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

// JobResponse carries requirements as the stored newline-joined blob; it is
// not split back into a list.
type JobResponse struct {
	ID                uuid.UUID `json:"id"`
	ExternalID        string    `json:"externalId"`
	SourceBoard       string    `json:"sourceBoard"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Description       string    `json:"description"`
	Requirements      string    `json:"requirements"`
	Benefits          []string  `json:"benefits"`
	CompanyLogo       string    `json:"companyLogo"`
	SalaryRange       string    `json:"salaryRange"`
	EmploymentType    string    `json:"employmentType"`
	EmploymentTypeRaw string    `json:"employmentTypeRaw"`
	URL               string    `json:"url"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func NewJobResponse(p job.Posting) JobResponse {
	benefits := p.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return JobResponse{
		ID:                p.ID,
		ExternalID:        p.ExternalID,
		SourceBoard:       p.SourceBoard,
		Title:             p.Title,
		Company:           p.Company,
		Location:          p.Location,
		Description:       p.Description,
		Requirements:      p.Requirements,
		Benefits:          benefits,
		CompanyLogo:       p.CompanyLogo,
		SalaryRange:       p.SalaryRange,
		EmploymentType:    string(p.EmploymentType),
		EmploymentTypeRaw: p.EmploymentTypeRaw,
		URL:               p.URL,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func NewJobListResponse(items []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobResponse(p))
	}
	return out
}
