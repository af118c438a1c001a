package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("application not found")
	// ErrDuplicate is returned when (user, job) already has an application,
	// whether caught by the pre-insert check or by the unique index.
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (Application, error)
	// Create inserts a and returns it with Job populated.
	Create(ctx context.Context, a Application) (Application, error)
	// ListByUser returns the user's applications, most recent first, with the
	// job and employer responses joined. A nil status means all statuses.
	ListByUser(ctx context.Context, userID uuid.UUID, status *Status) ([]Application, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[Status]int64, error)
}

type CVRepository interface {
	// EnsurePlaceholder returns the user's first CV, creating the placeholder
	// one if the user has none.
	EnsurePlaceholder(ctx context.Context, userID uuid.UUID) (CV, error)
}
