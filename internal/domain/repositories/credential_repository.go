package repositories

import (
	"context"

	"github.com/google/uuid"
	"golden-seed.backend/internal/domain/entities"
)

// CredentialRepository defines the lookups behind API-key resolution
type CredentialRepository interface {
	// FindActiveKeyByHash returns the single active key matching the digest.
	FindActiveKeyByHash(ctx context.Context, keyHash string) (*entities.ApiKey, error)
	// GetUser returns the key's owning user.
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// GetActiveSubscription returns the user's single active subscription.
	GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.Subscription, error)
	// TouchLastUsed records the current time as the key's last use.
	TouchLastUsed(ctx context.Context, keyID uuid.UUID) error
}
