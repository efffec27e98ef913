package entities

import "github.com/google/uuid"

// Principal is the identity + entitlement bundle produced by a successful
// authentication. It lives for the duration of one request and is never
// persisted.
type Principal struct {
	UserID      uuid.UUID `json:"user_id"`
	ApiKeyID    uuid.UUID `json:"api_key_id"`
	Email       string    `json:"email"`
	Tier        Tier      `json:"tier"`
	ChunksLimit int64     `json:"chunks_limit"`
	RateLimit   int64     `json:"rate_limit"`
}
