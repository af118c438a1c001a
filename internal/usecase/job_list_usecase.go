package usecase

import (
	"context"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/job"
)

const (
	DefaultJobListLimit = 20
	MaxJobListLimit     = 50
)

type JobListParams struct {
	Limit  int
	Offset int
}

// JobListUsecase feeds the swipe deck with active postings, newest first.
type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Posting, error)
}

type JobList struct {
	jobs job.Repository
}

var _ JobListUsecase = (*JobList)(nil)

func NewJobListUsecase(jobs job.Repository) *JobList {
	return &JobList{jobs: jobs}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.Posting, error) {
	limit := params.Limit
	if limit == 0 {
		limit = DefaultJobListLimit
	}
	if limit < 0 || limit > MaxJobListLimit {
		return nil, invalid("limit", "must be between 1 and 50")
	}
	if params.Offset < 0 {
		return nil, invalid("offset", "must not be negative")
	}

	items, err := u.jobs.ListActive(ctx, limit, params.Offset)
	if err != nil {
		return nil, internalError("list jobs", err)
	}
	if items == nil {
		items = []job.Posting{}
	}
	return items, nil
}
