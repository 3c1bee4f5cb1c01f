package config

import (
	"github.com/authcorp/libs/go/fnkit/observability"
)

const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// LoggerConfig selects the level and output format of the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// DefaultLoggerConfig logs JSON at info level.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: "info", Format: "json"}
}

// LoggerConfig reads the log.* keys, falling back to DefaultLoggerConfig.
func (c *Config) LoggerConfig() LoggerConfig {
	def := DefaultLoggerConfig()
	return LoggerConfig{
		Level:  c.GetString(KeyLogLevel).UnwrapOr(def.Level),
		Format: c.GetString(KeyLogFormat).UnwrapOr(def.Format),
	}
}

// Options converts lc to observability options writing to stderr.
func (lc LoggerConfig) Options() observability.Options {
	return observability.Options{
		Level:  observability.ParseLevel(lc.Level),
		Format: lc.Format,
	}
}

// Load builds a Config from an optional file and the FNKIT_ environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	c := New().WithDefaults(map[string]any{
		KeyLogLevel:  DefaultLoggerConfig().Level,
		KeyLogFormat: DefaultLoggerConfig().Format,
	})
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return c.LoadEnv(EnvPrefix), nil
}

// NewLogger builds the logger described by c.
func NewLogger(c *Config) *observability.DefaultLogger {
	return observability.NewLogger(c.LoggerConfig().Options())
}
