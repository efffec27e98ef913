package models

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog rows are append-only; there is no deleted_at.
type UsageLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_usage_logs_user_created"`
	ApiKeyID        uuid.UUID `gorm:"type:uuid;not null"`
	Endpoint        string    `gorm:"type:varchar(100);not null"`
	ChunksGenerated int64     `gorm:"not null"`
	ResponseTimeMs  int64     `gorm:"not null"`
	StatusCode      int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"index:idx_usage_logs_user_created"`
}
