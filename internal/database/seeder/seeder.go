package seeder

import (
	"context"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/database"
)

// Seeder must be idempotent; the runner may be invoked on every deploy.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
