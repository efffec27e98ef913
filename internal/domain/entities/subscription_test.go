package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitsForTier(t *testing.T) {
	tests := []struct {
		tier       Tier
		wantChunks int64
		wantRate   int64
		wantKnown  bool
	}{
		{TierFree, 10_000, 100, true},
		{TierIndie, 1_000_000, 1_000, true},
		{TierStudio, 10_000_000, 10_000, true},
		{TierEnterprise, 100_000_000, 100_000, true},
		{Tier("platinum"), 10_000, 100, false},
	}

	for _, tt := range tests {
		limits, known := LimitsForTier(tt.tier)
		assert.Equal(t, tt.wantChunks, limits.ChunksLimit, string(tt.tier))
		assert.Equal(t, tt.wantRate, limits.RateLimit, string(tt.tier))
		assert.Equal(t, tt.wantKnown, known, string(tt.tier))
	}
}
