package workload

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cacheburn/internal/config"
)

func sampleIndexes(t *testing.T, pattern config.KeyPattern, keySpace, n int) []int {
	t.Helper()

	sc := &config.Scenario{
		Name:        "dist",
		Requests:    1,
		Users:       1,
		ReadRatio:   1,
		KeyPattern:  pattern,
		PayloadMean: 1,
		KeySpace:    keySpace,
	}
	sampler := NewKeySampler(sc, 42)

	out := make([]int, n)
	for i := range out {
		out[i] = sampler.Index()
	}
	return out
}

func TestKeySampler_KeyFormat(t *testing.T) {
	sc := &config.Scenario{KeyPattern: config.PatternUniform, KeySpace: 10}
	sampler := NewKeySampler(sc, 1)

	for i := 0; i < 100; i++ {
		key := sampler.Key()
		require.True(t, strings.HasPrefix(key, "user_"), "key %q missing prefix", key)

		n, err := strconv.Atoi(strings.TrimPrefix(key, "user_"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestKeySampler_UniformDistribution(t *testing.T) {
	const keySpace = 100
	const n = 100000

	counts := make(map[int]int)
	for _, idx := range sampleIndexes(t, config.PatternUniform, keySpace, n) {
		require.GreaterOrEqual(t, idx, 1)
		require.LessOrEqual(t, idx, keySpace)
		counts[idx]++
	}

	// Every key should appear, and no key should deviate wildly from the
	// expected n/keySpace frequency.
	expected := float64(n) / float64(keySpace)
	for k := 1; k <= keySpace; k++ {
		c := counts[k]
		assert.Greater(t, c, 0, "key %d never sampled", k)
		assert.InDelta(t, expected, float64(c), expected*0.25, "key %d frequency off", k)
	}
}

func TestKeySampler_HotSkew(t *testing.T) {
	const keySpace = 1000
	const n = 100000

	hotBoundary := int(float64(keySpace) * 0.05)
	inHot := 0
	for _, idx := range sampleIndexes(t, config.PatternHot, keySpace, n) {
		require.GreaterOrEqual(t, idx, 1)
		require.LessOrEqual(t, idx, keySpace)
		if idx <= hotBoundary {
			inHot++
		}
	}

	// 90% of draws target the hot subset directly; the uniform 10% adds
	// another ~0.5% landing there by chance.
	frac := float64(inHot) / float64(n)
	assert.InDelta(t, 0.905, frac, 0.02)
}

func TestKeySampler_ZipfConcentration(t *testing.T) {
	const keySpace = 10000
	const n = 200000

	// Bucket indexes into deciles of the key space; the cube-of-uniform
	// draw concentrates mass near low indices, so decile counts must
	// strictly decrease.
	var deciles [10]int
	for _, idx := range sampleIndexes(t, config.PatternZipf, keySpace, n) {
		require.GreaterOrEqual(t, idx, 1)
		require.Less(t, idx, keySpace)

		bucket := (idx - 1) * 10 / keySpace
		deciles[bucket]++
	}

	for i := 1; i < 10; i++ {
		assert.Less(t, deciles[i], deciles[i-1],
			"decile %d (%d) not below decile %d (%d)", i, deciles[i], i-1, deciles[i-1])
	}

	// The first decile alone should hold nearly half the mass
	// (P(k <= 0.1*S) = 0.1^(1/3) ~ 0.464).
	assert.InDelta(t, 0.464, float64(deciles[0])/float64(n), 0.02)
}

func TestKeySampler_ZipfClampsToOne(t *testing.T) {
	// A key space of 1 forces floor(space * u^3) to 0 for almost every
	// draw; the clamp must keep indexes at 1.
	for _, idx := range sampleIndexes(t, config.PatternZipf, 1, 1000) {
		require.Equal(t, 1, idx)
	}
}

func TestKeySampler_HotTinyKeySpace(t *testing.T) {
	// floor(2 * 0.05) == 0: the hot subset must clamp to at least one key.
	for _, idx := range sampleIndexes(t, config.PatternHot, 2, 1000) {
		require.GreaterOrEqual(t, idx, 1)
		require.LessOrEqual(t, idx, 2)
	}
}
