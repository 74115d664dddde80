package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() Scenario {
	return Scenario{
		Name:        "ok",
		Requests:    10,
		Users:       5,
		ReadRatio:   0.5,
		KeyPattern:  PatternUniform,
		PayloadMean: 100,
		PayloadStd:  10,
		KeySpace:    1000,
	}
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr string
	}{
		{"valid", func(s *Scenario) {}, ""},
		{"empty name", func(s *Scenario) { s.Name = "" }, "name"},
		{"zero requests", func(s *Scenario) { s.Requests = 0 }, "requests"},
		{"zero users", func(s *Scenario) { s.Users = 0 }, "users"},
		{"negative ratio", func(s *Scenario) { s.ReadRatio = -0.1 }, "read_ratio"},
		{"ratio above one", func(s *Scenario) { s.ReadRatio = 1.1 }, "read_ratio"},
		{"bad pattern", func(s *Scenario) { s.KeyPattern = "pareto" }, "key_pattern"},
		{"zero mean", func(s *Scenario) { s.PayloadMean = 0 }, "payload_mean"},
		{"negative std", func(s *Scenario) { s.PayloadStd = -1 }, "payload_std"},
		{"zero key space", func(s *Scenario) { s.KeySpace = 0 }, "key_space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validScenario()
			tt.mutate(&sc)

			err := sc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogValidate_BoundaryRatios(t *testing.T) {
	for _, ratio := range []float64{0, 1} {
		sc := validScenario()
		sc.ReadRatio = ratio
		assert.NoError(t, sc.Validate())
	}
}

func TestCatalogValidate_DuplicateNames(t *testing.T) {
	catalog := &Catalog{Scenarios: []Scenario{validScenario(), validScenario()}}

	err := catalog.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCatalogValidate_Empty(t *testing.T) {
	err := (&Catalog{}).Validate()
	require.Error(t, err)
}

func TestKeyPatternValid(t *testing.T) {
	assert.True(t, PatternUniform.Valid())
	assert.True(t, PatternHot.Valid())
	assert.True(t, PatternZipf.Valid())
	assert.False(t, KeyPattern("").Valid())
	assert.False(t, KeyPattern("gaussian").Valid())
}
