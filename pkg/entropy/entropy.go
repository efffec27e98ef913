// Package entropy provides the deterministic chunk stream the API serves.
//
// The stream is a single universal sequence of 16-byte chunks addressed by
// position; a "seed" is simply an offset into it. The reference stream here
// derives chunk i from a hash of its position, which makes it deterministic
// and O(1)-seekable. A production generator can be swapped in through the
// Source interface without touching the handlers.
package entropy

import (
	"crypto/sha256"
	"encoding/binary"
)

// ChunkSize is the size of one unit of generator output in bytes.
const ChunkSize = 16

// Source yields successive chunks of a deterministic stream.
type Source interface {
	// Skip advances the stream by n chunks without producing output.
	Skip(n uint64)
	// Next returns the next chunk and advances the stream.
	Next() []byte
}

// Factory constructs a fresh Source positioned at the start of the stream.
// A nil factory means no generator is available.
type Factory func() Source

// Stream is the reference deterministic source.
type Stream struct {
	pos uint64
}

// NewStream returns a Stream positioned at chunk 0.
func NewStream() *Stream {
	return &Stream{}
}

// NewSource is the Factory for the reference stream.
func NewSource() Source {
	return NewStream()
}

// Skip advances the stream by n chunks.
func (s *Stream) Skip(n uint64) {
	s.pos += n
}

// Pos returns the current chunk position.
func (s *Stream) Pos() uint64 {
	return s.pos
}

// Next returns the chunk at the current position and advances by one.
func (s *Stream) Next() []byte {
	chunk := ChunkAt(s.pos)
	s.pos++
	return chunk
}

var domainTag = []byte("goldenseed/v1")

// ChunkAt returns the 16-byte chunk at position pos. Same position, same
// chunk, across processes and calls.
func ChunkAt(pos uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], pos)

	h := sha256.New()
	h.Write(domainTag)
	h.Write(buf[:])
	sum := h.Sum(nil)

	out := make([]byte, ChunkSize)
	copy(out, sum[:ChunkSize])
	return out
}
