package workload

import (
	"math"
	"math/rand"
	"sync"
)

// fillerByte is the byte value payloads are filled with.
const fillerByte = 'X'

// PayloadGenerator produces filler payloads whose sizes follow a Gaussian
// distribution. Safe for concurrent use.
type PayloadGenerator struct {
	mean float64
	std  float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPayloadGenerator creates a generator with the given size distribution.
// A zero std yields fixed-size payloads.
func NewPayloadGenerator(mean, std float64, seed int64) *PayloadGenerator {
	return &PayloadGenerator{
		mean: mean,
		std:  std,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Size returns the next payload size in bytes, always at least 1 even for
// negative Gaussian draws.
func (g *PayloadGenerator) Size() int {
	g.mu.Lock()
	draw := g.rng.NormFloat64()*g.std + g.mean
	g.mu.Unlock()

	size := int(math.Round(draw))
	if size < 1 {
		size = 1
	}
	return size
}

// Payload returns the next filler payload.
func (g *PayloadGenerator) Payload() []byte {
	size := g.Size()
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = fillerByte
	}
	return buf
}
