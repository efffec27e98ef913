package repositories

import (
	"context"

	"golden-seed.backend/internal/domain/entities"
)

// ProvisioningRepository defines creation of users, subscriptions and keys
type ProvisioningRepository interface {
	CreateUser(ctx context.Context, user *entities.User) error
	CreateSubscription(ctx context.Context, sub *entities.Subscription) error
	CreateApiKey(ctx context.Context, key *entities.ApiKey) error
}
