// Package config provides configuration loading with typed, Option-valued
// lookups.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/authcorp/libs/go/fnkit/functional"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the environment variable prefix read by LoadEnv callers.
const EnvPrefix = "FNKIT"

// Config holds configuration values. Explicit values take precedence over
// defaults.
type Config struct {
	values   map[string]any
	defaults map[string]any
}

// New creates a new empty Config.
func New() *Config {
	return &Config{
		values:   make(map[string]any),
		defaults: make(map[string]any),
	}
}

// WithDefaults sets default values.
func (c *Config) WithDefaults(defaults map[string]any) *Config {
	for k, v := range defaults {
		c.defaults[k] = v
	}
	return c
}

// LoadFile loads configuration from a JSON or YAML file. Nested mappings
// are flattened into dotted keys.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	flatten("", values, c.values)
	return nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// LoadEnv loads configuration from environment variables with prefix.
// PREFIX_LOG_LEVEL becomes the key "log.level".
func (c *Config) LoadEnv(prefix string) *Config {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" && !strings.HasPrefix(key, prefix+"_") {
			continue
		}
		configKey := strings.ToLower(strings.ReplaceAll(
			strings.TrimPrefix(key, prefix+"_"), "_", "."))
		c.values[configKey] = value
	}
	return c
}

// Set sets a configuration value.
func (c *Config) Set(key string, value any) {
	c.values[key] = value
}

// Get returns a configuration value.
func (c *Config) Get(key string) functional.Option[any] {
	if v, ok := c.values[key]; ok {
		return functional.Of(v)
	}
	if v, ok := c.defaults[key]; ok {
		return functional.Of(v)
	}
	return functional.None[any]()
}

// GetString returns a string configuration value.
func (c *Config) GetString(key string) functional.Option[string] {
	return functional.MapOption(c.Get(key), func(v any) string {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	})
}

// GetInt returns an int configuration value. Values that are not
// numeric are None.
func (c *Config) GetInt(key string) functional.Option[int] {
	return functional.FlatMapOption(c.Get(key), func(v any) functional.Option[int] {
		switch val := v.(type) {
		case int:
			return functional.Some(val)
		case int64:
			return functional.Some(int(val))
		case float64:
			return functional.Some(int(val))
		case string:
			i, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return functional.None[int]()
			}
			return functional.Some(i)
		}
		return functional.None[int]()
	})
}

// GetBool returns a bool configuration value.
func (c *Config) GetBool(key string) functional.Option[bool] {
	return functional.FlatMapOption(c.Get(key), func(v any) functional.Option[bool] {
		switch val := v.(type) {
		case bool:
			return functional.Some(val)
		case string:
			switch strings.ToLower(val) {
			case "true", "1", "yes":
				return functional.Some(true)
			case "false", "0", "no":
				return functional.Some(false)
			}
		}
		return functional.None[bool]()
	})
}

// GetStringSlice returns a string slice configuration value. A string is
// split on commas.
func (c *Config) GetStringSlice(key string) functional.Option[[]string] {
	return functional.FlatMapOption(c.Get(key), func(v any) functional.Option[[]string] {
		switch val := v.(type) {
		case []string:
			return functional.Some(val)
		case []any:
			result := make([]string, len(val))
			for i, item := range val {
				result[i] = fmt.Sprintf("%v", item)
			}
			return functional.Some(result)
		case string:
			return functional.Some(strings.Split(val, ","))
		}
		return functional.None[[]string]()
	})
}

// Validate checks that required keys are present.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, key := range required {
		if c.Get(key).IsNone() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingKeys: missing}
	}
	return nil
}

// ValidationError represents configuration validation errors.
type ValidationError struct {
	MissingKeys []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required config keys: %s", strings.Join(e.MissingKeys, ", "))
}

// AppError converts e to a coded invalid-argument error.
func (e *ValidationError) AppError() *apperrors.AppError {
	return apperrors.InvalidArgument(e.Error()).WithDetail("missing", e.MissingKeys)
}

// All returns all configuration values.
func (c *Config) All() map[string]any {
	result := make(map[string]any, len(c.defaults)+len(c.values))
	for k, v := range c.defaults {
		result[k] = v
	}
	for k, v := range c.values {
		result[k] = v
	}
	return result
}
