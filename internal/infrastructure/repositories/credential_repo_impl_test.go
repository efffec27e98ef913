package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
)

func TestCredentialRepository_FindActiveKeyByHash(t *testing.T) {
	db := newTestDB(t)
	createApiKeyTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	keyID := uuid.New()
	userID := uuid.New()
	mustExec(t, db, `INSERT INTO api_keys (id, user_id, name, key_hash, key_prefix, is_active, created_at, updated_at)
		VALUES (?, ?, 'Default API Key', 'hash-active', 'gs_abcdefgh', 1, ?, ?)`,
		keyID, userID, time.Now(), time.Now())
	mustExec(t, db, `INSERT INTO api_keys (id, user_id, name, key_hash, key_prefix, is_active, created_at, updated_at)
		VALUES (?, ?, 'Revoked', 'hash-revoked', 'gs_zzzzzzzz', 0, ?, ?)`,
		uuid.New(), userID, time.Now(), time.Now())

	key, err := repo.FindActiveKeyByHash(ctx, "hash-active")
	require.NoError(t, err)
	assert.Equal(t, keyID, key.ID)
	assert.Equal(t, userID, key.UserID)
	assert.True(t, key.IsActive)

	_, err = repo.FindActiveKeyByHash(ctx, "hash-revoked")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.FindActiveKeyByHash(ctx, "hash-unknown")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_GetUser(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	mustExec(t, db, `INSERT INTO users (id, email, created_at, updated_at)
		VALUES (?, 'dev@studio.example', ?, ?)`, userID, time.Now(), time.Now())

	user, err := repo.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "dev@studio.example", user.Email)

	_, err = repo.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_GetActiveSubscription(t *testing.T) {
	db := newTestDB(t)
	createSubscriptionTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	mustExec(t, db, `INSERT INTO subscriptions (id, user_id, tier, chunks_limit, rate_limit, is_active, created_at, updated_at)
		VALUES (?, ?, 'indie', 1000000, 1000, 1, ?, ?)`, uuid.New(), userID, time.Now(), time.Now())
	mustExec(t, db, `INSERT INTO subscriptions (id, user_id, tier, chunks_limit, rate_limit, is_active, created_at, updated_at)
		VALUES (?, ?, 'free', 10000, 100, 0, ?, ?)`, uuid.New(), userID, time.Now(), time.Now())

	sub, err := repo.GetActiveSubscription(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.TierIndie, sub.Tier)
	assert.Equal(t, int64(1_000_000), sub.ChunksLimit)

	_, err = repo.GetActiveSubscription(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialRepository_TouchLastUsed(t *testing.T) {
	db := newTestDB(t)
	createApiKeyTable(t, db)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	keyID := uuid.New()
	mustExec(t, db, `INSERT INTO api_keys (id, user_id, name, key_hash, key_prefix, is_active, created_at, updated_at)
		VALUES (?, ?, 'Default API Key', 'hash-touch', 'gs_abcdefgh', 1, ?, ?)`,
		keyID, uuid.New(), time.Now(), time.Now())

	require.NoError(t, repo.TouchLastUsed(ctx, keyID))

	key, err := repo.FindActiveKeyByHash(ctx, "hash-touch")
	require.NoError(t, err)
	require.NotNil(t, key.LastUsedAt)
	assert.WithinDuration(t, time.Now(), *key.LastUsedAt, time.Minute)
}
