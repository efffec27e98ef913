package models

import (
	"time"

	"github.com/google/uuid"
)

type GenerationRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Hash       string    `gorm:"type:varchar(64);not null"`
	HashPrefix string    `gorm:"type:varchar(16);index;not null"`
	Seed       int64     `gorm:"not null"`
	Chunks     int       `gorm:"not null"`
	CreatedAt  time.Time
}
