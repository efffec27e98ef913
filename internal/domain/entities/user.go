package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents an account that owns subscriptions and API keys. Users are
// created once via provisioning and never mutated by this service.
type User struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	BillingCustomerID null.String `json:"billingCustomerId,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// CreateUserInput is the provisioning request for a new user.
type CreateUserInput struct {
	Email             string `json:"email" binding:"required,email"`
	BillingCustomerID string `json:"billingCustomerId"`
}
