package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

type mockListJobRepo struct {
	items       []job.Posting
	err         error
	gotLimit    int
	gotOffset   int
	listInvoked bool
}

func (m *mockListJobRepo) Upsert(context.Context, job.Posting) (job.Posting, error) {
	return job.Posting{}, nil
}

func (m *mockListJobRepo) ListActive(_ context.Context, limit, offset int) ([]job.Posting, error) {
	m.listInvoked = true
	m.gotLimit = limit
	m.gotOffset = offset
	return m.items, m.err
}

func TestJobListUsecase_ListJobs_InvalidLimit(t *testing.T) {
	repo := &mockListJobRepo{}
	uc := NewJobListUsecase(repo)

	_, err := uc.ListJobs(context.Background(), JobListParams{Limit: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.ListJobs(context.Background(), JobListParams{Limit: 51})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.ListJobs(context.Background(), JobListParams{Offset: -5})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.False(t, repo.listInvoked)
}

func TestJobListUsecase_ListJobs_DefaultLimit(t *testing.T) {
	repo := &mockListJobRepo{}
	uc := NewJobListUsecase(repo)

	items, err := uc.ListJobs(context.Background(), JobListParams{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, DefaultJobListLimit, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
}

func TestJobListUsecase_ListJobs_Success(t *testing.T) {
	id := uuid.New()
	repo := &mockListJobRepo{items: []job.Posting{{
		ID:             id,
		ExternalID:     "1",
		Title:          "Data Scientist",
		Company:        "FinTech Solutions IE",
		Location:       "Cork",
		EmploymentType: job.EmploymentFullTime,
	}}}
	uc := NewJobListUsecase(repo)

	items, err := uc.ListJobs(context.Background(), JobListParams{Limit: 10, Offset: 5})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, 5, repo.gotOffset)
}

func TestJobListUsecase_ListJobs_StoreError(t *testing.T) {
	uc := NewJobListUsecase(&mockListJobRepo{err: errors.New("boom")})
	_, err := uc.ListJobs(context.Background(), JobListParams{})
	assert.ErrorIs(t, err, ErrInternal)
}
