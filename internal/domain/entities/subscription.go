package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Tier is a named subscription plan fixing a monthly chunk quota and a
// per-minute rate limit.
type Tier string

const (
	TierFree       Tier = "free"
	TierIndie      Tier = "indie"
	TierStudio     Tier = "studio"
	TierEnterprise Tier = "enterprise"
)

// TierLimits are the fixed entitlements of a tier.
type TierLimits struct {
	ChunksLimit int64 // chunks per calendar month
	RateLimit   int64 // requests per minute
}

var tierLimits = map[Tier]TierLimits{
	TierFree:       {ChunksLimit: 10_000, RateLimit: 100},
	TierIndie:      {ChunksLimit: 1_000_000, RateLimit: 1_000},
	TierStudio:     {ChunksLimit: 10_000_000, RateLimit: 10_000},
	TierEnterprise: {ChunksLimit: 100_000_000, RateLimit: 100_000},
}

// LimitsForTier resolves a tier to its limits. Unrecognized tiers report
// ok=false and fall back to the free limits.
func LimitsForTier(tier Tier) (TierLimits, bool) {
	if l, ok := tierLimits[tier]; ok {
		return l, true
	}
	return tierLimits[TierFree], false
}

// Subscription ties a user to a tier. Exactly one active subscription is
// expected per user; authentication fails otherwise.
type Subscription struct {
	ID                    uuid.UUID   `json:"id"`
	UserID                uuid.UUID   `json:"userId"`
	Tier                  Tier        `json:"tier"`
	ChunksLimit           int64       `json:"chunksLimit"`
	RateLimit             int64       `json:"rateLimit"`
	IsActive              bool        `json:"isActive"`
	BillingSubscriptionID null.String `json:"billingSubscriptionId,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// CreateSubscriptionInput is the provisioning request for a new subscription.
type CreateSubscriptionInput struct {
	UserID                uuid.UUID `json:"userId" binding:"required"`
	Tier                  string    `json:"tier"`
	BillingSubscriptionID string    `json:"billingSubscriptionId"`
}
