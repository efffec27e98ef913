package repositories

import (
	"context"

	"golden-seed.backend/internal/domain/entities"
)

// GenerationRecordRepository persists generation traces for verification
type GenerationRecordRepository interface {
	Create(ctx context.Context, record *entities.GenerationRecord) error
	FindByHashPrefix(ctx context.Context, prefix string) (*entities.GenerationRecord, error)
}
