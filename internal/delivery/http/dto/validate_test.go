package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

const validDecision = `{
  "jobId": "1",
  "action": "apply",
  "jobData": {
    "title": "Frontend Developer",
    "company": "TechCorp Ireland",
    "location": "Dublin 2",
    "salary": "€45,000 - €60,000",
    "type": "Full-time",
    "description": "Build modern web applications.",
    "requirements": [],
    "benefits": ["Remote work"],
    "companyLogo": "/placeholder.svg"
  }
}`

func decodeDecision(t *testing.T, body string) DecisionRequest {
	t.Helper()
	var req DecisionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestValidate_DecisionOK(t *testing.T) {
	req := decodeDecision(t, validDecision)
	assert.NoError(t, Validate(req))
	assert.Equal(t, "Full-time", req.JobData.Metadata().Type)
}

func TestValidate_DecisionMissingArray(t *testing.T) {
	req := decodeDecision(t, validDecision)
	req.JobData.Requirements = nil

	err := Validate(req)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "jobData.requirements", fe.Field)
	assert.Equal(t, "is required", fe.Message())
}

func TestValidate_DecisionBadAction(t *testing.T) {
	req := decodeDecision(t, validDecision)
	req.Action = "superlike"

	var fe *FieldError
	require.ErrorAs(t, Validate(req), &fe)
	assert.Equal(t, "action", fe.Field)
	assert.Equal(t, "oneof", fe.Rule)
}

func TestValidate_DecisionMissingJobData(t *testing.T) {
	req := decodeDecision(t, `{"jobId":"1","action":"reject"}`)

	var fe *FieldError
	require.ErrorAs(t, Validate(req), &fe)
	assert.Equal(t, "jobData.title", fe.Field)
}

func TestValidate_Signup(t *testing.T) {
	assert.NoError(t, Validate(SignupRequest{Email: "a@example.ie", Password: "password123"}))

	var fe *FieldError
	require.ErrorAs(t, Validate(SignupRequest{Email: "nope", Password: "password123"}), &fe)
	assert.Equal(t, "email", fe.Field)

	require.ErrorAs(t, Validate(SignupRequest{Email: "a@example.ie", Password: "short"}), &fe)
	assert.Equal(t, "password", fe.Field)
}

func TestNewJobResponse_RequirementsAsStored(t *testing.T) {
	p := job.NewPosting(job.SourceMock, "1", job.Metadata{
		Title:        "Frontend Developer",
		Type:         "Full-time",
		Requirements: []string{"React\nRedux", "TypeScript"},
	})

	res := NewJobResponse(p)
	assert.Equal(t, "React\nRedux\nTypeScript", res.Requirements)
	assert.Equal(t, []string{}, res.Benefits)

	empty := NewJobResponse(job.NewPosting(job.SourceMock, "2", job.Metadata{Requirements: []string{""}}))
	assert.Equal(t, "", empty.Requirements)
}
