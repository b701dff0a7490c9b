package plan

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// RandomSource yields uniformly distributed integers in [0, bound).
// bound is always positive.
type RandomSource interface {
	Next(bound int) int
}

type lockedRandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a goroutine-safe source backed by math/rand.
func NewRandomSource(seed int64) RandomSource {
	return &lockedRandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *lockedRandSource) Next(bound int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(bound)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
