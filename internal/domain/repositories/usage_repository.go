package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golden-seed.backend/internal/domain/entities"
)

// UsageRepository defines usage accounting operations. Aggregations run
// server-side; callers apply the fail-open policy on error.
type UsageRepository interface {
	// MonthlyChunks sums chunks generated by the user in the current
	// calendar month.
	MonthlyChunks(ctx context.Context, userID uuid.UUID) (int64, error)
	// CountRequestsSince counts the user's usage entries created at or
	// after the given instant.
	CountRequestsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
	// Append stores one usage entry.
	Append(ctx context.Context, entry *entities.UsageLog) error
	// ListRecent returns the user's most recent usage entries, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.UsageLog, error)
}
