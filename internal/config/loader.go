package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	fileName   = "treasuremap.yaml"
	schemaName = "treasuremap.schema.json"
)

// Load reads the configuration.
// Search order: customPath -> ~/.treasuremap/config.yaml -> ./configs/treasuremap.yaml -> embedded default
//
// Only an explicit customPath produces an error; broken files found during
// the search are skipped. Keys missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", fileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false
	}
	cfg.Source = path
	return cfg, true
}

// Parse validates a YAML document against the schema and decodes it on top
// of Default().
func Parse(data []byte) (Config, error) {
	if err := Validate(data); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a YAML document against the embedded JSON Schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		// Empty file: nothing to override.
		return nil
	}

	v, err := jsonValue(doc)
	if err != nil {
		return err
	}

	s, err := compiledSchema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}

// jsonValue converts decoded YAML into the shapes encoding/json produces,
// which is what the validator expects.
func jsonValue(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config is not representable as JSON: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaName, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("config schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaName)
	})
	return schema, schemaErr
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".treasuremap", filename)
}
