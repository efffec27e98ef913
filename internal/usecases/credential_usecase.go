package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"golden-seed.backend/internal/domain/entities"
	domainerrors "golden-seed.backend/internal/domain/errors"
	"golden-seed.backend/internal/domain/repositories"
	"golden-seed.backend/pkg/logger"
)

// CredentialUsecase resolves raw API keys to principals
type CredentialUsecase struct {
	credRepo repositories.CredentialRepository
}

// NewCredentialUsecase creates a new credential usecase
func NewCredentialUsecase(credRepo repositories.CredentialRepository) *CredentialUsecase {
	return &CredentialUsecase{credRepo: credRepo}
}

// HashKey returns the SHA-256 hex digest of a raw API key. Deterministic and
// unsalted: lookups are by exact digest match.
func HashKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

// ResolveKey digests the raw key and resolves it to a Principal: active key
// row, owning user, exactly one active subscription. Any gap in that chain is
// an invalid key; a missing user is data inconsistency and is reported the
// same way. The last-used timestamp is recorded best-effort.
func (u *CredentialUsecase) ResolveKey(ctx context.Context, rawKey string) (*entities.Principal, error) {
	keyHash := HashKey(rawKey)

	key, err := u.credRepo.FindActiveKeyByHash(ctx, keyHash)
	if err != nil {
		return nil, domainerrors.ErrInvalidKey
	}

	user, err := u.credRepo.GetUser(ctx, key.UserID)
	if err != nil {
		return nil, domainerrors.ErrInvalidKey
	}

	sub, err := u.credRepo.GetActiveSubscription(ctx, user.ID)
	if err != nil {
		return nil, domainerrors.ErrInvalidKey
	}

	if err := u.credRepo.TouchLastUsed(ctx, key.ID); err != nil {
		logger.Warn(ctx, "failed to update api key last_used_at", zap.Error(err))
	}

	return &entities.Principal{
		UserID:      user.ID,
		ApiKeyID:    key.ID,
		Email:       user.Email,
		Tier:        sub.Tier,
		ChunksLimit: sub.ChunksLimit,
		RateLimit:   sub.RateLimit,
	}, nil
}
