package repositories

import (
	"context"

	"gorm.io/gorm"

	"golden-seed.backend/internal/domain/entities"
	"golden-seed.backend/internal/infrastructure/models"
)

// ProvisioningRepository implements creation of users, subscriptions and keys
type ProvisioningRepository struct {
	db *gorm.DB
}

// NewProvisioningRepository creates a new provisioning repository
func NewProvisioningRepository(db *gorm.DB) *ProvisioningRepository {
	return &ProvisioningRepository{db: db}
}

// CreateUser creates a new user
func (r *ProvisioningRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:                user.ID,
		Email:             user.Email,
		BillingCustomerID: user.BillingCustomerID.Ptr(),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// CreateSubscription creates a new subscription
func (r *ProvisioningRepository) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	m := &models.Subscription{
		ID:                    sub.ID,
		UserID:                sub.UserID,
		Tier:                  string(sub.Tier),
		ChunksLimit:           sub.ChunksLimit,
		RateLimit:             sub.RateLimit,
		IsActive:              sub.IsActive,
		BillingSubscriptionID: sub.BillingSubscriptionID.Ptr(),
		CreatedAt:             sub.CreatedAt,
		UpdatedAt:             sub.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// CreateApiKey persists a new API key record (digest and prefix only)
func (r *ProvisioningRepository) CreateApiKey(ctx context.Context, key *entities.ApiKey) error {
	m := &models.ApiKey{
		ID:        key.ID,
		UserID:    key.UserID,
		Name:      key.Name,
		KeyHash:   key.KeyHash,
		KeyPrefix: key.KeyPrefix,
		IsActive:  key.IsActive,
		CreatedAt: key.CreatedAt,
		UpdatedAt: key.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
