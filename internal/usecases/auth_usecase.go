package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"golden-seed.backend/internal/config"
	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
)

const pricingURL = "https://goldenseed.io/pricing"

// demoUserID and demoKeyID identify the fixed demo principal.
var (
	demoUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("goldenseed.io/demo-user"))
	demoKeyID  = uuid.NewSHA1(uuid.NameSpaceURL, []byte("goldenseed.io/demo-key"))
)

// AuthUsecase runs the admission chain: resolve key, enforce the per-minute
// rate limit, enforce the monthly chunk quota. The first failing step
// terminates the request with a specific reason; there are no retries.
type AuthUsecase struct {
	mode        config.Mode
	demoKey     string
	credentials *CredentialUsecase
	usage       *UsageUsecase
}

// NewAuthUsecase creates a new auth usecase. In demo mode credentials and
// usage may be nil.
func NewAuthUsecase(mode config.Mode, demoKey string, credentials *CredentialUsecase, usage *UsageUsecase) *AuthUsecase {
	return &AuthUsecase{
		mode:        mode,
		demoKey:     demoKey,
		credentials: credentials,
		usage:       usage,
	}
}

// Authorize resolves the raw key and enforces rate and quota limits.
func (u *AuthUsecase) Authorize(ctx context.Context, rawKey string) (*entities.Principal, error) {
	principal, err := u.resolve(ctx, rawKey)
	if err != nil {
		return nil, err
	}

	if err := u.CheckLimits(ctx, principal); err != nil {
		return nil, err
	}
	return principal, nil
}

// CheckLimits re-runs the rate and quota checks for an already resolved
// principal. The batch endpoint calls this once per contained seed.
func (u *AuthUsecase) CheckLimits(ctx context.Context, principal *entities.Principal) error {
	if u.mode == config.ModeDemo {
		return nil
	}

	if !u.usage.CheckRateLimit(ctx, principal.UserID, principal.RateLimit).Allowed() {
		return domainerrors.RateLimited(
			fmt.Sprintf("Rate limit exceeded. Limit: %d requests/minute", principal.RateLimit))
	}

	if u.usage.MonthlyUsage(ctx, principal.UserID) >= principal.ChunksLimit {
		return domainerrors.QuotaExceeded(
			fmt.Sprintf("Monthly chunk limit exceeded. Limit: %d chunks. Upgrade at %s", principal.ChunksLimit, pricingURL))
	}

	return nil
}

func (u *AuthUsecase) resolve(ctx context.Context, rawKey string) (*entities.Principal, error) {
	if u.mode == config.ModeDemo {
		if rawKey == u.demoKey {
			return demoPrincipal(), nil
		}
		return nil, domainerrors.Forbidden(
			fmt.Sprintf("Invalid API key. Use %s for testing.", u.demoKey))
	}

	principal, err := u.credentials.ResolveKey(ctx, rawKey)
	if err != nil {
		return nil, domainerrors.Forbidden("Invalid or expired API key")
	}
	return principal, nil
}

func demoPrincipal() *entities.Principal {
	limits, _ := entities.LimitsForTier(entities.TierFree)
	return &entities.Principal{
		UserID:      demoUserID,
		ApiKeyID:    demoKeyID,
		Email:       "demo@goldenseed.io",
		Tier:        entities.TierFree,
		ChunksLimit: limits.ChunksLimit,
		RateLimit:   limits.RateLimit,
	}
}
