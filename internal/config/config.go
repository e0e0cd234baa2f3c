// Package config loads restshape settings from a YAML file and RESTSHAPE_*
// environment variables.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/restshape/analyzer"
	"github.com/erraggy/restshape/classmeta"
	"github.com/erraggy/restshape/logging"
	"github.com/erraggy/restshape/schema"
	"github.com/erraggy/restshape/shapeerrors"
	"github.com/erraggy/restshape/typeid"
)

// DefaultMaxSampleBytes bounds inline sample payloads accepted by the MCP
// server.
const DefaultMaxSampleBytes = 1 << 20

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	// Naming is the definition naming strategy: simple, qualified, fullpath
	// or generic.
	Naming string `yaml:"naming,omitempty"`
	// NameTemplate overrides Naming with a text/template.
	NameTemplate string `yaml:"nameTemplate,omitempty"`
	// RefPrefix is the definition reference prefix.
	RefPrefix string `yaml:"refPrefix,omitempty"`
	// SyntheticName is the base name of inferred shapes.
	SyntheticName string `yaml:"syntheticName,omitempty"`

	// Collections and Envelopes extend the default vocabulary. Entries may
	// use Java notation ("com.example.Page") or signatures.
	Collections []string `yaml:"collections,omitempty"`
	Envelopes   []string `yaml:"envelopes,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`

	// MaxSampleBytes bounds inline samples.
	MaxSampleBytes int `yaml:"maxSampleBytes,omitempty"`

	// Cache controls reuse of decoded class metadata by the MCP server.
	Cache CacheConfig `yaml:"cache,omitempty"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	MaxSize int           `yaml:"maxSize,omitempty"`
	TTL     time.Duration `yaml:"ttl,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Naming:         schema.NamingSimple.String(),
		RefPrefix:      schema.DefaultRefPrefix,
		SyntheticName:  typeid.SyntheticName,
		LogLevel:       "warn",
		MaxSampleBytes: DefaultMaxSampleBytes,
		Cache: CacheConfig{
			Enabled: true,
			MaxSize: 10,
			TTL:     15 * time.Minute,
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path skips the file; a missing file is an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &shapeerrors.ConfigError{Option: "config", Value: path, Message: "file not found", Cause: err}
			}
			return nil, &shapeerrors.ParseError{Path: path, Message: "reading file", Cause: err}
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, &shapeerrors.ParseError{Path: path, Message: "decoding configuration", Cause: err}
		}
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyEnv overrides fields from RESTSHAPE_* environment variables.
// Invalid values log a warning and keep the current value.
func (c *Config) ApplyEnv() {
	c.Naming = envNaming("RESTSHAPE_NAMING", c.Naming)
	c.NameTemplate = envString("RESTSHAPE_NAME_TEMPLATE", c.NameTemplate)
	c.RefPrefix = envString("RESTSHAPE_REF_PREFIX", c.RefPrefix)
	c.SyntheticName = envString("RESTSHAPE_SYNTHETIC_NAME", c.SyntheticName)
	c.Collections = envList("RESTSHAPE_COLLECTIONS", c.Collections)
	c.Envelopes = envList("RESTSHAPE_ENVELOPES", c.Envelopes)
	c.LogLevel = envLevel("RESTSHAPE_LOG_LEVEL", c.LogLevel)
	c.MaxSampleBytes = envInt("RESTSHAPE_MAX_SAMPLE_BYTES", c.MaxSampleBytes)
	c.Cache.Enabled = envBool("RESTSHAPE_CACHE_ENABLED", c.Cache.Enabled)
	c.Cache.MaxSize = envInt("RESTSHAPE_CACHE_MAX_SIZE", c.Cache.MaxSize)
	c.Cache.TTL = envDuration("RESTSHAPE_CACHE_TTL", c.Cache.TTL)
}

// Validate checks values that could not be checked while loading.
func (c *Config) Validate() error {
	if _, ok := schema.ParseNamingStrategy(c.Naming); !ok {
		return &shapeerrors.ConfigError{Option: "naming", Value: c.Naming, Message: "unknown naming strategy"}
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return &shapeerrors.ConfigError{Option: "logLevel", Value: c.LogLevel, Message: "unknown log level"}
	}
	if c.MaxSampleBytes < 0 {
		return &shapeerrors.ConfigError{Option: "maxSampleBytes", Value: c.MaxSampleBytes, Message: "must not be negative"}
	}
	if c.Cache.Enabled && (c.Cache.MaxSize <= 0 || c.Cache.TTL <= 0) {
		return &shapeerrors.ConfigError{Option: "cache", Message: "maxSize and ttl must be positive"}
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// Vocabulary returns the default vocabulary extended by the configured
// collection and envelope types.
func (c *Config) Vocabulary() typeid.Vocabulary {
	v := typeid.DefaultVocabulary()
	for _, name := range c.Collections {
		v.Collections = append(v.Collections, typeid.Erasure(classmeta.Descriptor(name)))
	}
	for _, name := range c.Envelopes {
		v.Envelopes = append(v.Envelopes, typeid.Erasure(classmeta.Descriptor(name)))
	}
	return v
}

// AnalyzerOptions returns the analyzer options for c.
func (c *Config) AnalyzerOptions(logger logging.Logger) []analyzer.Option {
	return []analyzer.Option{
		analyzer.WithVocabulary(c.Vocabulary()),
		analyzer.WithLogger(logger),
	}
}

// SchemaOptions returns the schema builder options for c.
func (c *Config) SchemaOptions(logger logging.Logger) []schema.Option {
	strategy, _ := schema.ParseNamingStrategy(c.Naming)
	opts := []schema.Option{
		schema.WithNaming(strategy),
		schema.WithSyntheticName(c.SyntheticName),
		schema.WithLogger(logger),
	}
	if c.RefPrefix != "" {
		opts = append(opts, schema.WithRefPrefix(c.RefPrefix))
	}
	if c.NameTemplate != "" {
		opts = append(opts, schema.WithNameTemplate(c.NameTemplate))
	}
	return opts
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "", "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelWarn, false
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for part := range strings.SplitSeq(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return slices.Concat(fallback, out)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

func envNaming(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, ok := schema.ParseNamingStrategy(v); !ok {
		slog.Warn("invalid naming env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envLevel(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, ok := parseLevel(v); !ok {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}
