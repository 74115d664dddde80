package config

import (
	"fmt"
)

// Validate checks the catalog as a whole: at least one scenario, unique
// names, and per-scenario field validity.
func (c *Catalog) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("catalog must contain at least one scenario")
	}

	seen := make(map[string]bool)
	for i := range c.Scenarios {
		sc := &c.Scenarios[i]
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("invalid scenario '%s': %w", sc.Name, err)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name '%s'", sc.Name)
		}
		seen[sc.Name] = true
	}

	return nil
}

// Validate checks a single scenario's fields.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name cannot be empty")
	}

	if s.Requests < 1 {
		return fmt.Errorf("requests must be at least 1")
	}

	if s.Users < 1 {
		return fmt.Errorf("users must be at least 1")
	}

	if s.ReadRatio < 0 || s.ReadRatio > 1 {
		return fmt.Errorf("read_ratio must be between 0 and 1")
	}

	if !s.KeyPattern.Valid() {
		return fmt.Errorf("invalid key_pattern '%s', must be one of: uniform, hot, zipf", s.KeyPattern)
	}

	if s.PayloadMean <= 0 {
		return fmt.Errorf("payload_mean must be positive")
	}

	if s.PayloadStd < 0 {
		return fmt.Errorf("payload_std cannot be negative")
	}

	if s.KeySpace < 1 {
		return fmt.Errorf("key_space must be at least 1")
	}

	return nil
}
