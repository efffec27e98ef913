package entities

import (
	"time"

	"github.com/google/uuid"
)

// Output formats accepted by the generate endpoint.
const (
	FormatHex    = "hex"
	FormatJSON   = "json"
	FormatBinary = "binary"
)

// Generation bounds.
const (
	MaxChunksPerRequest = 10_000
	MaxSeedsPerBatch    = 10
	MaxChunksPerSeed    = 1_000
	MaxFlips            = 1_000_000
)

// GenerateRequest is the body of POST /api/v1/generate. Chunks is a pointer
// so an omitted field takes the default while an explicit 0 fails validation.
type GenerateRequest struct {
	Seed   int64  `json:"seed" binding:"omitempty,min=0"`
	Chunks *int   `json:"chunks" binding:"omitempty,min=1,max=10000"`
	Format string `json:"format" binding:"omitempty,oneof=hex json binary"`
	Skip   int64  `json:"skip" binding:"omitempty,min=0"`
}

// ChunkCount returns the requested chunk count or the default of 100.
func (r *GenerateRequest) ChunkCount() int {
	if r.Chunks == nil {
		return 100
	}
	return *r.Chunks
}

// OutputFormat returns the requested format or the default of hex.
func (r *GenerateRequest) OutputFormat() string {
	if r.Format == "" {
		return FormatHex
	}
	return r.Format
}

// GenerateResponse is the response of the generate endpoint. Data holds one
// element per chunk: a hex string, a byte-value array, or a base64 string,
// depending on the requested format.
type GenerateResponse struct {
	Data            []any  `json:"data"`
	Hash            string `json:"hash"`
	ChunksGenerated int    `json:"chunks_generated"`
	Seed            int64  `json:"seed"`
	VerificationURL string `json:"verification_url"`
}

// VerifyResponse is the response of GET /api/v1/verify/{hash_prefix}.
type VerifyResponse struct {
	Valid   bool   `json:"valid"`
	Seed    *int64 `json:"seed,omitempty"`
	Chunks  *int   `json:"chunks,omitempty"`
	Message string `json:"message"`
}

// CoinFlipStatsResponse is the response of GET /api/v1/stats/coinflip.
type CoinFlipStatsResponse struct {
	Heads          int64   `json:"heads"`
	Tails          int64   `json:"tails"`
	Total          int64   `json:"total"`
	HeadsRatio     float64 `json:"heads_ratio"`
	PerfectBalance bool    `json:"perfect_balance"`
	Message        string  `json:"message"`
}

// BatchRequest is the body of POST /api/v1/batch.
type BatchRequest struct {
	Seeds         []int64 `json:"seeds" binding:"required,max=10,dive,min=0"`
	ChunksPerSeed *int    `json:"chunks_per_seed" binding:"omitempty,min=1,max=1000"`
}

// ChunkCount returns the requested per-seed chunk count or the default of 100.
func (r *BatchRequest) ChunkCount() int {
	if r.ChunksPerSeed == nil {
		return 100
	}
	return *r.ChunksPerSeed
}

// BatchResponse aggregates per-seed generate responses in seed order.
type BatchResponse struct {
	Results []GenerateResponse `json:"results"`
}

// GenerationRecord is the persisted trace of one successful generation,
// looked up by the verify endpoint.
type GenerationRecord struct {
	ID         uuid.UUID `json:"id"`
	Hash       string    `json:"hash"`
	HashPrefix string    `json:"hashPrefix"`
	Seed       int64     `json:"seed"`
	Chunks     int       `json:"chunks"`
	CreatedAt  time.Time `json:"createdAt"`
}
