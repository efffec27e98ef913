package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"golden-seed.backend/internal/domain/entities"
	"golden-seed.backend/internal/infrastructure/models"
)

// UsageRepository implements usage accounting against the store
type UsageRepository struct {
	db *gorm.DB
}

// NewUsageRepository creates a new usage repository
func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

var usageNow = time.Now

// MonthlyChunks sums chunks generated by the user in the current calendar month
func (r *UsageRepository) MonthlyChunks(ctx context.Context, userID uuid.UUID) (int64, error) {
	now := usageNow().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.UsageLog{}).
		Where("user_id = ? AND created_at >= ?", userID, monthStart).
		Select("COALESCE(SUM(chunks_generated), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountRequestsSince counts usage entries created at or after since
func (r *UsageRepository) CountRequestsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UsageLog{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Append stores one usage entry
func (r *UsageRepository) Append(ctx context.Context, entry *entities.UsageLog) error {
	m := &models.UsageLog{
		ID:              entry.ID,
		UserID:          entry.UserID,
		ApiKeyID:        entry.ApiKeyID,
		Endpoint:        entry.Endpoint,
		ChunksGenerated: entry.ChunksGenerated,
		ResponseTimeMs:  entry.ResponseTimeMs,
		StatusCode:      entry.StatusCode,
		CreatedAt:       entry.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListRecent returns the user's most recent usage entries, newest first
func (r *UsageRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.UsageLog, error) {
	var rows []models.UsageLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.UsageLog, 0, len(rows))
	for _, m := range rows {
		entries = append(entries, &entities.UsageLog{
			ID:              m.ID,
			UserID:          m.UserID,
			ApiKeyID:        m.ApiKeyID,
			Endpoint:        m.Endpoint,
			ChunksGenerated: m.ChunksGenerated,
			ResponseTimeMs:  m.ResponseTimeMs,
			StatusCode:      m.StatusCode,
			CreatedAt:       m.CreatedAt,
		})
	}
	return entries, nil
}
