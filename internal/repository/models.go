package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
)

// Row models for the tables created by migration V1. They stay private to
// this package; callers only see domain types.

type jobModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SourceBoard       string         `gorm:"not null;uniqueIndex:uq_jobs_source_external"`
	ExternalID        string         `gorm:"not null;uniqueIndex:uq_jobs_source_external"`
	Title             string         `gorm:"not null"`
	Company           string         `gorm:"not null"`
	Location          string         `gorm:"not null"`
	Description       string         `gorm:"type:text;not null"`
	Requirements      string         `gorm:"type:text;not null"`
	Benefits          pq.StringArray `gorm:"type:text[]"`
	CompanyLogo       string
	SalaryRange       string
	EmploymentType    string `gorm:"not null"`
	EmploymentTypeRaw string
	URL               string `gorm:"column:url"`
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (jobModel) TableName() string { return "jobs" }

type applicationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_job_applications_user_job"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_job_applications_user_job"`
	CVID      uuid.UUID `gorm:"column:cv_id;type:uuid;not null"`
	Status    string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Job       *jobModel               `gorm:"foreignKey:JobID;references:ID"`
	Responses []employerResponseModel `gorm:"foreignKey:ApplicationID;references:ID"`
}

func (applicationModel) TableName() string { return "job_applications" }

type employerResponseModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null"`
	ResponseType  string
	Content       string
	ReceivedAt    time.Time
}

func (employerResponseModel) TableName() string { return "employer_responses" }

type cvModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	OriginalText    string         `gorm:"type:text;not null"`
	Skills          pq.StringArray `gorm:"type:text[]"`
	ExperienceYears int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (cvModel) TableName() string { return "cvs" }

type profileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Location    *string
	LinkedInURL *string        `gorm:"column:linkedin_url"`
	Preferences datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (profileModel) TableName() string { return "user_profiles" }

func jobModelFrom(p job.Posting) jobModel {
	return jobModel{
		ID:                p.ID,
		SourceBoard:       p.SourceBoard,
		ExternalID:        p.ExternalID,
		Title:             p.Title,
		Company:           p.Company,
		Location:          p.Location,
		Description:       p.Description,
		Requirements:      p.Requirements,
		Benefits:          pq.StringArray(nonNil(p.Benefits)),
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

func (m jobModel) toDomain() job.Posting {
	return job.Posting{
		ID:                m.ID,
		SourceBoard:       m.SourceBoard,
		ExternalID:        m.ExternalID,
		Title:             m.Title,
		Company:           m.Company,
		Location:          m.Location,
		Description:       m.Description,
		Requirements:      m.Requirements,
		Benefits:          nonNil([]string(m.Benefits)),
		CompanyLogo:       m.CompanyLogo,
		SalaryRange:       m.SalaryRange,
		EmploymentType:    job.EmploymentType(m.EmploymentType),
		EmploymentTypeRaw: m.EmploymentTypeRaw,
		URL:               m.URL,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (m applicationModel) toDomain() application.Application {
	a := application.Application{
		ID:        m.ID,
		UserID:    m.UserID,
		JobID:     m.JobID,
		CVID:      m.CVID,
		Status:    application.Status(m.Status),
		AppliedAt: m.AppliedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Responses: make([]application.EmployerResponse, 0, len(m.Responses)),
	}
	if m.Job != nil {
		p := m.Job.toDomain()
		a.Job = &p
	}
	for _, r := range m.Responses {
		a.Responses = append(a.Responses, application.EmployerResponse{
			ID:            r.ID,
			ApplicationID: r.ApplicationID,
			ResponseType:  r.ResponseType,
			Content:       r.Content,
			ReceivedAt:    r.ReceivedAt,
		})
	}
	return a
}

func (m cvModel) toDomain() application.CV {
	return application.CV{
		ID:              m.ID,
		UserID:          m.UserID,
		OriginalText:    m.OriginalText,
		Skills:          nonNil([]string(m.Skills)),
		ExperienceYears: m.ExperienceYears,
		CreatedAt:       m.CreatedAt,
	}
}

func (m profileModel) toDomain() user.Profile {
	p := user.Profile{
		ID:          m.ID,
		UserID:      m.UserID,
		Location:    m.Location,
		LinkedInURL: m.LinkedInURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.Preferences) > 0 {
		p.Preferences = []byte(m.Preferences)
	}
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
