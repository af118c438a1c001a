package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmploymentType(t *testing.T) {
	cases := map[string]EmploymentType{
		"Full-time": EmploymentFullTime,
		"Part-time": EmploymentPartTime,
		"Contract":  EmploymentPartTime,
		"full-time": EmploymentPartTime,
		"":          EmploymentPartTime,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeEmploymentType(in), "input %q", in)
	}
}

func TestNewPosting(t *testing.T) {
	md := Metadata{
		Title:        "Frontend Developer",
		Company:      "TechCorp Ireland",
		Location:     "Dublin 2",
		Salary:       "€45,000 - €60,000",
		Type:         "Full-time",
		Description:  "Build web apps.",
		Requirements: []string{"3+ years React experience", "TypeScript proficiency"},
		Benefits:     []string{"Health insurance"},
		CompanyLogo:  "https://via.placeholder.com/60x60",
	}

	p := NewPosting(SourceMock, "1", md)
	assert.Equal(t, SourceMock, p.SourceBoard)
	assert.Equal(t, "1", p.ExternalID)
	assert.Equal(t, "3+ years React experience\nTypeScript proficiency", p.Requirements)
	assert.Equal(t, EmploymentFullTime, p.EmploymentType)
	assert.Equal(t, "Full-time", p.EmploymentTypeRaw)
	assert.Equal(t, "€45,000 - €60,000", p.SalaryRange)
	assert.Equal(t, URLPlaceholder, p.URL)
	assert.True(t, p.IsActive)

	md.Benefits[0] = "changed"
	assert.Equal(t, "Health insurance", p.Benefits[0])
}
