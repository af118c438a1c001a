package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatsCache holds per-user stats. Read-path fills use SetJSONIfAbsent so a
// fill computed before a concurrent apply cannot overwrite the value the
// apply wrote with SetJSON.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetJSONIfAbsent(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

func StatsCacheKey(userID uuid.UUID) string {
	return "stats:" + userID.String()
}
