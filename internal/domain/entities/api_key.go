package entities

import (
	"time"

	"github.com/google/uuid"
)

// KeyPrefixLen is the number of leading raw-key characters kept for display
// ("gs_" plus the first token characters).
const KeyPrefixLen = 11

// ApiKey represents an API key for a user. Only the SHA-256 digest of the raw
// key is ever persisted; the raw key is shown to the caller exactly once, at
// creation.
type ApiKey struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Name       string     `json:"name"`
	KeyHash    string     `json:"-"`
	KeyPrefix  string     `json:"keyPrefix"`
	IsActive   bool       `json:"isActive"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CreateApiKeyInput is the provisioning request for a new API key.
type CreateApiKeyInput struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Name   string    `json:"name"`
}

// CreateApiKeyResponse carries the raw key back to the caller. This is the
// only time the key is available in plaintext.
type CreateApiKeyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ApiKey    string    `json:"apiKey"`
	KeyPrefix string    `json:"keyPrefix"`
	CreatedAt time.Time `json:"createdAt"`
}
