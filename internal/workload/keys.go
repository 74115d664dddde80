// Package workload generates keys and payloads for synthetic cache traffic.
package workload

import (
	"fmt"
	"math/rand"
	"sync"

	"cacheburn/internal/config"
)

// KeySampler draws key identifiers of the form user_<N> according to a
// scenario's access pattern. Safe for concurrent use: the underlying
// rand.Rand is not, so draws are serialized.
type KeySampler struct {
	pattern  config.KeyPattern
	keySpace int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewKeySampler creates a sampler for the given scenario, seeded with seed
// so distribution tests can reproduce draws.
func NewKeySampler(sc *config.Scenario, seed int64) *KeySampler {
	return &KeySampler{
		pattern:  sc.KeyPattern,
		keySpace: sc.KeySpace,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Key returns the next key identifier.
func (s *KeySampler) Key() string {
	return fmt.Sprintf("user_%d", s.Index())
}

// Index returns the next raw key index in [1, keySpace].
func (s *KeySampler) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.pattern {
	case config.PatternHot:
		// 90/10 skew: most draws land in the first 5% of the key space,
		// the rest cover the full range (overlapping the hot subset).
		if s.rng.Float64() < 0.9 {
			hot := int(float64(s.keySpace) * 0.05)
			if hot < 1 {
				hot = 1
			}
			return 1 + s.rng.Intn(hot)
		}
		return 1 + s.rng.Intn(s.keySpace)

	case config.PatternZipf:
		// Cube-of-uniform approximation, not a calibrated Zipf law:
		// floor(keySpace * U^3) concentrates mass near low indices.
		u := s.rng.Float64()
		k := int(float64(s.keySpace) * u * u * u)
		if k < 1 {
			k = 1
		}
		return k

	default: // uniform
		return 1 + s.rng.Intn(s.keySpace)
	}
}
