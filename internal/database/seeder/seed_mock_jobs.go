package seeder

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

//go:embed data/mock_jobs.yaml
var mockJobsYAML []byte

type mockJob struct {
	ExternalID   string   `yaml:"external_id"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Salary       string   `yaml:"salary"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
	Benefits     []string `yaml:"benefits"`
	CompanyLogo  string   `yaml:"company_logo"`
}

func (m mockJob) metadata() job.Metadata {
	return job.Metadata{
		Title:        m.Title,
		Company:      m.Company,
		Location:     m.Location,
		Salary:       m.Salary,
		Type:         m.Type,
		Description:  m.Description,
		Requirements: m.Requirements,
		Benefits:     m.Benefits,
		CompanyLogo:  m.CompanyLogo,
	}
}

// JobStore is the job repository plus a check that its table matches the
// row model it writes.
type JobStore interface {
	job.Repository
	VerifySchema(ctx context.Context) error
}

// MockJobsSeeder loads the swipe deck through the same upsert a swipe uses,
// so re-running it only refreshes the mutable fields.
type MockJobsSeeder struct {
	Jobs JobStore
}

func (MockJobsSeeder) Name() string { return "mock_jobs" }

func (s MockJobsSeeder) Run(ctx context.Context, _ database.DB) error {
	if s.Jobs == nil {
		return errors.New("nil job repository")
	}
	if err := s.Jobs.VerifySchema(ctx); err != nil {
		return err
	}

	items, err := LoadMockJobs()
	if err != nil {
		return err
	}
	for _, it := range items {
		if _, err := s.Jobs.Upsert(ctx, job.NewPosting(job.SourceMock, it.ExternalID, it.metadata())); err != nil {
			return fmt.Errorf("upsert mock job %s: %w", it.ExternalID, err)
		}
	}
	return nil
}

func LoadMockJobs() ([]mockJob, error) {
	var items []mockJob
	if err := yaml.Unmarshal(mockJobsYAML, &items); err != nil {
		return nil, fmt.Errorf("parse mock jobs: %w", err)
	}
	for i, it := range items {
		if it.ExternalID == "" || it.Title == "" {
			return nil, fmt.Errorf("mock job %d: external_id and title are required", i)
		}
	}
	return items, nil
}
