package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks that every config section is declared in the schema and that required fields are set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if unknown := undeclaredKeys(schema, configMap); len(unknown) > 0 {
		return fmt.Errorf("schema is missing sections: %s", strings.Join(unknown, ", "))
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// undeclaredKeys returns top-level config keys not present in the schema's Config definition
func undeclaredKeys(schema, configMap map[string]interface{}) []string {
	props := map[string]interface{}{}
	if defs, ok := schema["$defs"].(map[string]interface{}); ok {
		if def, ok := defs["Config"].(map[string]interface{}); ok {
			if p, ok := def["properties"].(map[string]interface{}); ok {
				props = p
			}
		}
	}

	var res []string
	for k := range configMap {
		if _, ok := props[k]; !ok {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.NASA.APODURL == "" {
		return fmt.Errorf("nasa.apod_url is required")
	}
	if cfg.NASA.FeedURL == "" {
		return fmt.Errorf("nasa.neo_feed_url is required")
	}
	if cfg.NASA.Timeout == 0 {
		return fmt.Errorf("nasa.timeout is required")
	}
	if cfg.Harvest.MaxItems == 0 {
		return fmt.Errorf("harvest.max_items is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
