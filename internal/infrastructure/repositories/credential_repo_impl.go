package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/infrastructure/models"
)

// CredentialRepository implements the API-key resolution lookups
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// FindActiveKeyByHash returns the active key matching the digest
func (r *CredentialRepository) FindActiveKeyByHash(ctx context.Context, keyHash string) (*entities.ApiKey, error) {
	var m models.ApiKey
	err := r.db.WithContext(ctx).
		Where("key_hash = ? AND is_active = ?", keyHash, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return apiKeyToEntity(&m), nil
}

// GetUser returns the user owning a key
func (r *CredentialRepository) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetActiveSubscription returns the user's single active subscription
func (r *CredentialRepository) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error) {
	var m models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return subscriptionToEntity(&m), nil
}

// TouchLastUsed records the current time as the key's last use
func (r *CredentialRepository) TouchLastUsed(ctx context.Context, keyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.ApiKey{}).
		Where("id = ?", keyID).
		Update("last_used_at", time.Now()).Error
}

func apiKeyToEntity(m *models.ApiKey) *entities.ApiKey {
	return &entities.ApiKey{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		KeyHash:    m.KeyHash,
		KeyPrefix:  m.KeyPrefix,
		IsActive:   m.IsActive,
		LastUsedAt: m.LastUsedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                m.ID,
		Email:             m.Email,
		BillingCustomerID: null.StringFromPtr(m.BillingCustomerID),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func subscriptionToEntity(m *models.Subscription) *entities.Subscription {
	return &entities.Subscription{
		ID:                    m.ID,
		UserID:                m.UserID,
		Tier:                  entities.Tier(m.Tier),
		ChunksLimit:           m.ChunksLimit,
		RateLimit:             m.RateLimit,
		IsActive:              m.IsActive,
		BillingSubscriptionID: null.StringFromPtr(m.BillingSubscriptionID),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
