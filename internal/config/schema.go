package config

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// catalogSchema is the JSON Schema every catalog document must satisfy
// before it is decoded into typed scenarios. YAML catalogs are normalized
// to JSON first, so one schema covers both formats.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["scenarios"],
  "properties": {
    "scenarios": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "requests", "users", "read_ratio", "key_pattern", "payload_mean", "key_space"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "requests": {"type": "integer", "minimum": 1},
          "users": {"type": "integer", "minimum": 1},
          "read_ratio": {"type": "number", "minimum": 0, "maximum": 1},
          "key_pattern": {"type": "string", "enum": ["uniform", "hot", "zipf"]},
          "payload_mean": {"type": "number", "exclusiveMinimum": 0},
          "payload_std": {"type": "number", "minimum": 0},
          "key_space": {"type": "integer", "minimum": 1}
        }
      }
    }
  }
}`

var compiledCatalogSchema = jsonschema.MustCompileString("catalog.schema.json", catalogSchema)

// ValidateCatalogDocument validates raw catalog JSON against the embedded
// catalog schema.
func ValidateCatalogDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}

	if err := compiledCatalogSchema.Validate(doc); err != nil {
		return fmt.Errorf("document does not match catalog schema: %w", err)
	}

	return nil
}
