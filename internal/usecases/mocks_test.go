package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"golden-seed.backend/internal/domain/entities"
)

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindActiveKeyByHash(ctx context.Context, keyHash string) (*entities.ApiKey, error) {
	args := m.Called(ctx, keyHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ApiKey), args.Error(1)
}

func (m *MockCredentialRepository) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockCredentialRepository) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subscription), args.Error(1)
}

func (m *MockCredentialRepository) TouchLastUsed(ctx context.Context, keyID uuid.UUID) error {
	return m.Called(ctx, keyID).Error(0)
}

type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) MonthlyChunks(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsageRepository) CountRequestsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsageRepository) Append(ctx context.Context, entry *entities.UsageLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockUsageRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.UsageLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UsageLog), args.Error(1)
}

type MockProvisioningRepository struct {
	mock.Mock
}

func (m *MockProvisioningRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockProvisioningRepository) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockProvisioningRepository) CreateApiKey(ctx context.Context, key *entities.ApiKey) error {
	return m.Called(ctx, key).Error(0)
}

type MockGenerationRecordRepository struct {
	mock.Mock
}

func (m *MockGenerationRecordRepository) Create(ctx context.Context, record *entities.GenerationRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockGenerationRecordRepository) FindByHashPrefix(ctx context.Context, prefix string) (*entities.GenerationRecord, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GenerationRecord), args.Error(1)
}

type MockRateWindow struct {
	mock.Mock
}

func (m *MockRateWindow) Incr(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
