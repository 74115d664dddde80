package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadGenerator_FixedSize(t *testing.T) {
	gen := NewPayloadGenerator(512, 0, 7)

	for i := 0; i < 100; i++ {
		p := gen.Payload()
		require.Len(t, p, 512)
	}
}

func TestPayloadGenerator_MinimumOneByte(t *testing.T) {
	// A large std around a tiny mean produces many negative Gaussian
	// draws; sizes must still floor at 1.
	gen := NewPayloadGenerator(1, 1000, 7)

	for i := 0; i < 10000; i++ {
		size := gen.Size()
		require.GreaterOrEqual(t, size, 1)
	}
}

func TestPayloadGenerator_SizeDistribution(t *testing.T) {
	const mean, std = 1024.0, 100.0
	gen := NewPayloadGenerator(mean, std, 7)

	const n = 20000
	sum := 0
	for i := 0; i < n; i++ {
		sum += gen.Size()
	}

	assert.InDelta(t, mean, float64(sum)/n, std*0.05)
}

func TestPayloadGenerator_FillerContent(t *testing.T) {
	gen := NewPayloadGenerator(64, 0, 7)

	for _, b := range gen.Payload() {
		require.Equal(t, byte('X'), b)
	}
}
