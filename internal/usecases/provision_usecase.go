package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/domain/repositories"
	"golden-seed.backend/pkg/crypto"
	"golden-seed.backend/pkg/logger"
)

const defaultApiKeyName = "Default API Key"

// ProvisionUsecase creates users, subscriptions and API keys
type ProvisionUsecase struct {
	provRepo repositories.ProvisioningRepository
}

// NewProvisionUsecase creates a new provisioning usecase
func NewProvisionUsecase(provRepo repositories.ProvisioningRepository) *ProvisionUsecase {
	return &ProvisionUsecase{provRepo: provRepo}
}

// CreateUser creates a new user
func (u *ProvisionUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	now := time.Now()
	user := &entities.User{
		ID:        uuid.New(),
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.BillingCustomerID != "" {
		user.BillingCustomerID = null.StringFrom(input.BillingCustomerID)
	}

	if err := u.provRepo.CreateUser(ctx, user); err != nil {
		return nil, domainerrors.NewAppError(500, "failed to create user", err)
	}
	return user, nil
}

// CreateSubscription creates an active subscription with the tier's fixed
// limits. An unrecognized tier keeps its name but falls back to the free
// limits; the fallback is logged so typos stay visible.
func (u *ProvisionUsecase) CreateSubscription(ctx context.Context, input *entities.CreateSubscriptionInput) (*entities.Subscription, error) {
	tier := entities.Tier(input.Tier)
	if input.Tier == "" {
		tier = entities.TierFree
	}

	limits, known := entities.LimitsForTier(tier)
	if !known {
		logger.Warn(ctx, "unrecognized subscription tier, using free limits",
			zap.String("tier", input.Tier))
	}

	now := time.Now()
	sub := &entities.Subscription{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Tier:        tier,
		ChunksLimit: limits.ChunksLimit,
		RateLimit:   limits.RateLimit,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.BillingSubscriptionID != "" {
		sub.BillingSubscriptionID = null.StringFrom(input.BillingSubscriptionID)
	}

	if err := u.provRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, domainerrors.NewAppError(500, "failed to create subscription", err)
	}
	return sub, nil
}

// CreateApiKey generates a raw key ("gs_" + 32 random bytes, base64url),
// persists its digest and display prefix, and returns the raw key. This is
// the only time the key is available in plaintext.
func (u *ProvisionUsecase) CreateApiKey(ctx context.Context, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	token, err := crypto.GenerateURLSafeToken(32)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	rawKey := "gs_" + token

	name := input.Name
	if name == "" {
		name = defaultApiKeyName
	}

	now := time.Now()
	key := &entities.ApiKey{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      name,
		KeyHash:   HashKey(rawKey),
		KeyPrefix: rawKey[:entities.KeyPrefixLen],
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.provRepo.CreateApiKey(ctx, key); err != nil {
		return nil, domainerrors.NewAppError(500, "failed to create api key", err)
	}

	return &entities.CreateApiKeyResponse{
		ID:        key.ID,
		Name:      key.Name,
		ApiKey:    rawKey,
		KeyPrefix: key.KeyPrefix,
		CreatedAt: key.CreatedAt,
	}, nil
}
