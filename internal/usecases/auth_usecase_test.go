package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"golden-seed.backend/internal/config"
	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/usecases"
)

const demoKey = "gs_demo_key_12345"

func newProductionAuth(credRepo *MockCredentialRepository, usageRepo *MockUsageRepository) *usecases.AuthUsecase {
	credentials := usecases.NewCredentialUsecase(credRepo)
	usage := usecases.NewUsageUsecase(usageRepo, nil)
	return usecases.NewAuthUsecase(config.ModeProduction, demoKey, credentials, usage)
}

func stubResolvableKey(credRepo *MockCredentialRepository, rawKey string, tier entities.Tier) (uuid.UUID, entities.TierLimits) {
	userID := uuid.New()
	limits, _ := entities.LimitsForTier(tier)

	key := &entities.ApiKey{ID: uuid.New(), UserID: userID, IsActive: true}
	user := &entities.User{ID: userID, Email: "dev@x.y"}
	sub := &entities.Subscription{
		UserID:      userID,
		Tier:        tier,
		ChunksLimit: limits.ChunksLimit,
		RateLimit:   limits.RateLimit,
		IsActive:    true,
	}

	credRepo.On("FindActiveKeyByHash", mock.Anything, usecases.HashKey(rawKey)).Return(key, nil)
	credRepo.On("GetUser", mock.Anything, userID).Return(user, nil)
	credRepo.On("GetActiveSubscription", mock.Anything, userID).Return(sub, nil)
	credRepo.On("TouchLastUsed", mock.Anything, key.ID).Return(nil)

	return userID, limits
}

func TestAuthUsecase_DemoMode(t *testing.T) {
	uc := usecases.NewAuthUsecase(config.ModeDemo, demoKey, nil, nil)
	ctx := context.Background()

	t.Run("demo key authenticates with free limits", func(t *testing.T) {
		principal, err := uc.Authorize(ctx, demoKey)
		assert.NoError(t, err)
		assert.Equal(t, entities.TierFree, principal.Tier)
		assert.Equal(t, int64(10_000), principal.ChunksLimit)
		assert.Equal(t, int64(100), principal.RateLimit)
	})

	t.Run("any other key is rejected with a hint", func(t *testing.T) {
		_, err := uc.Authorize(ctx, "gs_real_looking_key")
		var appErr *domainerrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Contains(t, appErr.Message, demoKey)
	})
}

func TestAuthUsecase_Production_UnknownKey(t *testing.T) {
	credRepo := new(MockCredentialRepository)
	usageRepo := new(MockUsageRepository)
	uc := newProductionAuth(credRepo, usageRepo)

	credRepo.On("FindActiveKeyByHash", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Authorize(context.Background(), "gs_unknown")
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "Invalid or expired API key", appErr.Message)
}

func TestAuthUsecase_Production_RateLimitDenies(t *testing.T) {
	credRepo := new(MockCredentialRepository)
	usageRepo := new(MockUsageRepository)
	uc := newProductionAuth(credRepo, usageRepo)

	userID, limits := stubResolvableKey(credRepo, "gs_rate_limited", entities.TierFree)
	usageRepo.On("CountRequestsSince", mock.Anything, userID, mock.Anything).Return(limits.RateLimit, nil)

	_, err := uc.Authorize(context.Background(), "gs_rate_limited")
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 429, appErr.Code)
	assert.Contains(t, appErr.Message, "Rate limit exceeded")
	// The rate check fails first; the quota is never consulted.
	usageRepo.AssertNotCalled(t, "MonthlyChunks", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Production_QuotaDenies(t *testing.T) {
	credRepo := new(MockCredentialRepository)
	usageRepo := new(MockUsageRepository)
	uc := newProductionAuth(credRepo, usageRepo)

	userID, limits := stubResolvableKey(credRepo, "gs_over_quota", entities.TierFree)
	usageRepo.On("CountRequestsSince", mock.Anything, userID, mock.Anything).Return(int64(0), nil)
	usageRepo.On("MonthlyChunks", mock.Anything, userID).Return(limits.ChunksLimit, nil)

	_, err := uc.Authorize(context.Background(), "gs_over_quota")
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 429, appErr.Code)
	assert.Contains(t, appErr.Message, "Monthly chunk limit exceeded")
	assert.Contains(t, appErr.Message, "https://goldenseed.io/pricing")
}

func TestAuthUsecase_Production_Admits(t *testing.T) {
	credRepo := new(MockCredentialRepository)
	usageRepo := new(MockUsageRepository)
	uc := newProductionAuth(credRepo, usageRepo)

	userID, limits := stubResolvableKey(credRepo, "gs_fine", entities.TierIndie)
	usageRepo.On("CountRequestsSince", mock.Anything, userID, mock.Anything).Return(int64(3), nil)
	usageRepo.On("MonthlyChunks", mock.Anything, userID).Return(limits.ChunksLimit-1, nil)

	principal, err := uc.Authorize(context.Background(), "gs_fine")
	assert.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, entities.TierIndie, principal.Tier)
}

func TestAuthUsecase_Production_StoreOutageFailsOpen(t *testing.T) {
	credRepo := new(MockCredentialRepository)
	usageRepo := new(MockUsageRepository)
	uc := newProductionAuth(credRepo, usageRepo)

	_, _ = stubResolvableKey(credRepo, "gs_outage", entities.TierFree)
	usageRepo.On("CountRequestsSince", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("store down"))
	usageRepo.On("MonthlyChunks", mock.Anything, mock.Anything).Return(int64(0), errors.New("store down"))

	_, err := uc.Authorize(context.Background(), "gs_outage")
	assert.NoError(t, err)
}

func TestAuthUsecase_CheckLimits_DemoModeSkips(t *testing.T) {
	uc := usecases.NewAuthUsecase(config.ModeDemo, demoKey, nil, nil)
	principal := &entities.Principal{UserID: uuid.New(), RateLimit: 1, ChunksLimit: 1}
	assert.NoError(t, uc.CheckLimits(context.Background(), principal))
}
