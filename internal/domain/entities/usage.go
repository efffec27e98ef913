package entities

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog is one append-only usage record per served request. Monthly quota
// and per-minute rate aggregates are derived from these rows.
type UsageLog struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	ApiKeyID        uuid.UUID `json:"apiKeyId"`
	Endpoint        string    `json:"endpoint"`
	ChunksGenerated int64     `json:"chunksGenerated"`
	ResponseTimeMs  int64     `json:"responseTimeMs"`
	StatusCode      int       `json:"statusCode"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Decision is the outcome of an admission check against the backing store.
// Unknown means the store could not answer; policy treats it as a permit
// (fail-open) but it stays distinguishable for logging and tests.
type Decision int

const (
	DecisionPermit Decision = iota
	DecisionDeny
	DecisionUnknown
)

// Allowed reports whether the decision admits the request.
func (d Decision) Allowed() bool {
	return d != DecisionDeny
}

func (d Decision) String() string {
	switch d {
	case DecisionPermit:
		return "permit"
	case DecisionDeny:
		return "deny"
	default:
		return "unknown"
	}
}
