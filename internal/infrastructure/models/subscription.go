package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscription struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;index"`
	Tier                  string    `gorm:"type:varchar(20);not null"`
	ChunksLimit           int64     `gorm:"not null"`
	RateLimit             int64     `gorm:"not null"`
	IsActive              bool      `gorm:"default:true;not null"`
	BillingSubscriptionID *string   `gorm:"type:varchar(255)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
	User                  User           `gorm:"foreignKey:UserID"`
}
