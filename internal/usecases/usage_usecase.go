package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"golden-seed.backend/internal/domain/entities"
	"golden-seed.backend/internal/domain/repositories"
	"golden-seed.backend/pkg/logger"
)

// RateWindow counts admissions per user in the trailing minute. The Redis
// fixed-window counter implements it; when absent the store count is used.
type RateWindow interface {
	Incr(ctx context.Context, userID string) (int64, error)
}

// UsageUsecase applies the fail-open metering policy on top of the usage
// store. All methods tolerate a nil receiver (demo mode): no store means no
// metering.
type UsageUsecase struct {
	usageRepo  repositories.UsageRepository
	rateWindow RateWindow // optional fast path
}

// NewUsageUsecase creates a new usage usecase. rateWindow may be nil.
func NewUsageUsecase(usageRepo repositories.UsageRepository, rateWindow RateWindow) *UsageUsecase {
	return &UsageUsecase{usageRepo: usageRepo, rateWindow: rateWindow}
}

// MonthlyUsage returns chunks generated by the user this calendar month.
// Store errors yield 0 so an outage never blocks legitimate traffic.
func (u *UsageUsecase) MonthlyUsage(ctx context.Context, userID uuid.UUID) int64 {
	if u == nil {
		return 0
	}
	total, err := u.usageRepo.MonthlyChunks(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "monthly usage lookup failed, assuming zero", zap.Error(err))
		return 0
	}
	return total
}

// CheckRateLimit decides whether the user is within limitPerMinute requests.
// A store or counter error yields DecisionUnknown, which admits the request.
func (u *UsageUsecase) CheckRateLimit(ctx context.Context, userID uuid.UUID, limitPerMinute int64) entities.Decision {
	if u == nil {
		return entities.DecisionPermit
	}

	if u.rateWindow != nil {
		count, err := u.rateWindow.Incr(ctx, userID.String())
		if err != nil {
			logger.Warn(ctx, "rate window unavailable, admitting request", zap.Error(err))
			return entities.DecisionUnknown
		}
		if count > limitPerMinute {
			return entities.DecisionDeny
		}
		return entities.DecisionPermit
	}

	count, err := u.usageRepo.CountRequestsSince(ctx, userID, time.Now().Add(-time.Minute))
	if err != nil {
		logger.Warn(ctx, "rate limit count failed, admitting request", zap.Error(err))
		return entities.DecisionUnknown
	}
	if count >= limitPerMinute {
		return entities.DecisionDeny
	}
	return entities.DecisionPermit
}

// LogUsage appends one usage entry. Failures are logged and swallowed;
// logging can never fail a user-facing request.
func (u *UsageUsecase) LogUsage(ctx context.Context, userID, apiKeyID uuid.UUID, endpoint string, chunksGenerated, responseTimeMs int64, statusCode int) {
	if u == nil {
		return
	}
	entry := &entities.UsageLog{
		ID:              uuid.New(),
		UserID:          userID,
		ApiKeyID:        apiKeyID,
		Endpoint:        endpoint,
		ChunksGenerated: chunksGenerated,
		ResponseTimeMs:  responseTimeMs,
		StatusCode:      statusCode,
		CreatedAt:       time.Now(),
	}
	if err := u.usageRepo.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to log usage", zap.Error(err),
			zap.String("endpoint", endpoint))
	}
}

// ListRecent returns the user's most recent usage entries.
func (u *UsageUsecase) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.UsageLog, error) {
	if u == nil {
		return nil, nil
	}
	return u.usageRepo.ListRecent(ctx, userID, limit)
}
