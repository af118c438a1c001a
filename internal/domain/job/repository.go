package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	// Upsert inserts p when (SourceBoard, ExternalID) is new. Otherwise it
	// refreshes only title, company, location, description, salary range,
	// employment type and updated_at; every other column keeps the value of
	// the first insert. The stored row is returned.
	Upsert(ctx context.Context, p Posting) (Posting, error)
	ListActive(ctx context.Context, limit, offset int) ([]Posting, error)
}
