package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/infrastructure/models"
)

// GenerationRecordRepository persists generation traces for verification
type GenerationRecordRepository struct {
	db *gorm.DB
}

// NewGenerationRecordRepository creates a new generation record repository
func NewGenerationRecordRepository(db *gorm.DB) *GenerationRecordRepository {
	return &GenerationRecordRepository{db: db}
}

// Create stores one generation record
func (r *GenerationRecordRepository) Create(ctx context.Context, record *entities.GenerationRecord) error {
	m := &models.GenerationRecord{
		ID:         record.ID,
		Hash:       record.Hash,
		HashPrefix: record.HashPrefix,
		Seed:       record.Seed,
		Chunks:     record.Chunks,
		CreatedAt:  record.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// FindByHashPrefix returns the most recent record matching the prefix
func (r *GenerationRecordRepository) FindByHashPrefix(ctx context.Context, prefix string) (*entities.GenerationRecord, error) {
	var m models.GenerationRecord
	err := r.db.WithContext(ctx).
		Where("hash_prefix = ?", prefix).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.GenerationRecord{
		ID:         m.ID,
		Hash:       m.Hash,
		HashPrefix: m.HashPrefix,
		Seed:       m.Seed,
		Chunks:     m.Chunks,
		CreatedAt:  m.CreatedAt,
	}, nil
}
