// Package config provides scenario catalog parsing and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyPattern selects how keys are drawn from the key space.
type KeyPattern string

const (
	// PatternUniform draws keys uniformly across the whole key space.
	PatternUniform KeyPattern = "uniform"
	// PatternHot concentrates 90% of draws on the first 5% of the key space.
	PatternHot KeyPattern = "hot"
	// PatternZipf approximates a Zipf-like skew via a cube-of-uniform draw.
	PatternZipf KeyPattern = "zipf"
)

// Valid reports whether the pattern is one of the supported variants.
func (p KeyPattern) Valid() bool {
	switch p {
	case PatternUniform, PatternHot, PatternZipf:
		return true
	}
	return false
}

func (p KeyPattern) String() string {
	return string(p)
}

// Scenario is one named workload configuration. Scenarios are defined at
// startup and consumed read-only by every component.
type Scenario struct {
	// Name identifies the scenario in logs and the report.
	Name string `json:"name" yaml:"name"`

	// Requests is the total number of request attempts to issue.
	Requests int `json:"requests" yaml:"requests"`

	// Users is the concurrency bound: the batch size for concurrent dispatch.
	Users int `json:"users" yaml:"users"`

	// ReadRatio is the probability in [0,1] that an attempt is a READ.
	ReadRatio float64 `json:"read_ratio" yaml:"read_ratio"`

	// KeyPattern selects the key access distribution.
	KeyPattern KeyPattern `json:"key_pattern" yaml:"key_pattern"`

	// PayloadMean is the mean payload size in bytes.
	PayloadMean float64 `json:"payload_mean" yaml:"payload_mean"`

	// PayloadStd is the payload size standard deviation in bytes.
	// Zero yields fixed-size payloads.
	PayloadStd float64 `json:"payload_std" yaml:"payload_std"`

	// KeySpace is the number of distinct keys, addressed as user_1..user_N.
	KeySpace int `json:"key_space" yaml:"key_space"`
}

// Catalog is an ordered list of scenarios, executed strictly in list order.
type Catalog struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// DefaultCatalog returns the built-in workload catalog used when no catalog
// file is given.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Scenarios: []Scenario{
			{
				Name:        "1_Realistic_E_Commerce_Day",
				Requests:    100000,
				Users:       1000,
				ReadRatio:   0.9,
				KeyPattern:  PatternZipf,
				PayloadMean: 5120,
				PayloadStd:  1024,
				KeySpace:    50000,
			},
			{
				Name:        "2_Flash_Sale_Spike",
				Requests:    50000,
				Users:       3000,
				ReadRatio:   0.2,
				KeyPattern:  PatternHot,
				PayloadMean: 1024,
				PayloadStd:  100,
				KeySpace:    1000,
			},
			{
				Name:        "3_The_Ram_Eater",
				Requests:    50000,
				Users:       200,
				ReadRatio:   0.05,
				KeyPattern:  PatternUniform,
				PayloadMean: 50 * 1024,
				PayloadStd:  0,
				KeySpace:    200000,
			},
		},
	}
}

// LoadCatalog loads a scenario catalog from a YAML or JSON file. The decoded
// document is validated against the catalog schema and then semantically
// validated per scenario.
func LoadCatalog(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	return ParseCatalog(data, filepath.Ext(path))
}

// ParseCatalog parses catalog bytes. ext selects the decoder (".json" for
// JSON, anything else is treated as YAML).
func ParseCatalog(data []byte, ext string) (*Catalog, error) {
	if !strings.EqualFold(ext, ".json") {
		// Normalize YAML to JSON so the schema validator sees one document
		// shape regardless of input format.
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error parsing catalog file: %w", err)
		}
		normalized, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("error normalizing catalog file: %w", err)
		}
		data = normalized
	}

	if err := ValidateCatalogDocument(data); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return &catalog, nil
}
