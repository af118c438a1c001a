package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SourceMock is the only source board the swipe deck feeds from today.
const SourceMock = "mock"

// URLPlaceholder is stored as the external link until postings carry a real one.
const URLPlaceholder = "#"

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
)

// NormalizeEmploymentType maps the free-text type of a posting onto the stored
// enumeration. Only the exact literal "Full-time" is FULL_TIME; everything
// else, contract and temporary roles included, lands in PART_TIME. The raw
// text is stored next to it (Posting.EmploymentTypeRaw) so nothing is lost.
func NormalizeEmploymentType(raw string) EmploymentType {
	if raw == "Full-time" {
		return EmploymentFullTime
	}
	return EmploymentPartTime
}

// Posting is identified by (SourceBoard, ExternalID).
type Posting struct {
	ID                uuid.UUID
	SourceBoard       string
	ExternalID        string
	Title             string
	Company           string
	Location          string
	Description       string
	Requirements      string
	Benefits          []string
	CompanyLogo       string
	SalaryRange       string
	EmploymentType    EmploymentType
	EmploymentTypeRaw string
	URL               string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Metadata is the descriptive payload sent with every swipe.
type Metadata struct {
	Title        string
	Company      string
	Location     string
	Salary       string
	Type         string
	Description  string
	Requirements []string
	Benefits     []string
	CompanyLogo  string
}

// NewPosting builds the row inserted on the first sighting of an external id.
func NewPosting(source, externalID string, md Metadata) Posting {
	benefits := make([]string, len(md.Benefits))
	copy(benefits, md.Benefits)

	return Posting{
		SourceBoard:       source,
		ExternalID:        externalID,
		Title:             md.Title,
		Company:           md.Company,
		Location:          md.Location,
		Description:       md.Description,
		Requirements:      JoinRequirements(md.Requirements),
		Benefits:          benefits,
		CompanyLogo:       md.CompanyLogo,
		SalaryRange:       md.Salary,
		EmploymentType:    NormalizeEmploymentType(md.Type),
		EmploymentTypeRaw: md.Type,
		URL:               URLPlaceholder,
		IsActive:          true,
	}
}

func JoinRequirements(reqs []string) string {
	return strings.Join(reqs, "\n")
}
