// Package config loads server configuration from defaults, an optional
// YAML or JSON file, and FILTERTOK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"FilterTok/internal/analysis"
)

// Environment variables that override file settings.
const (
	EnvPort         = "FILTERTOK_PORT"
	EnvLogLevel     = "FILTERTOK_LOG_LEVEL"
	EnvMaxTextBytes = "FILTERTOK_MAX_TEXT_BYTES"
)

// Filter types accepted in AnalyzerDef.Type.
const (
	FilterTypeSet   = "set"
	FilterTypeTable = "table"
)

// AnalyzerDef declares a custom analyzer backed by keep and drop character sets.
type AnalyzerDef struct {
	Name string `json:"name" validate:"required,max=64,printascii,excludesall=/"`
	// Type selects the lookup structure: "set" (hash sets) or "table" (code point tables).
	Type string `json:"type" validate:"required,oneof=set table"`
	Keep string `json:"keep"`
	Drop string `json:"drop"`
}

// Config configures the server.
type Config struct {
	Port     string `json:"port" validate:"required,numeric"`
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`

	// MaxTextBytes limits the size of text accepted by tokenize requests.
	MaxTextBytes int `json:"max_text_bytes" validate:"gt=0"`

	Analyzers []AnalyzerDef `json:"analyzers" validate:"dive"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		MaxTextBytes: 1 << 20,
	}
}

// Load builds a Config from defaults, the file at path (skipped when path is
// empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv(EnvPort, c.Port)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	if v := os.Getenv(EnvMaxTextBytes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxTextBytes, err)
		}
		c.MaxTextBytes = n
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that analyzer names are unique and
// do not shadow the built-in analyzers.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[string]bool, len(c.Analyzers))
	builtin := analysis.NewRegistry()
	for _, def := range c.Analyzers {
		if seen[def.Name] {
			return fmt.Errorf("invalid config: duplicate analyzer %q", def.Name)
		}
		seen[def.Name] = true
		if _, err := builtin.Get(def.Name); err == nil {
			return fmt.Errorf("invalid config: analyzer %q shadows a built-in analyzer", def.Name)
		}
	}
	return nil
}

// Filter builds the filter described by d.
func (d AnalyzerDef) Filter() (analysis.Filter, error) {
	switch d.Type {
	case FilterTypeSet:
		return analysis.NewSetFilter(d.Keep, d.Drop), nil
	case FilterTypeTable:
		return analysis.NewTableFilter(d.Keep, d.Drop), nil
	default:
		return nil, fmt.Errorf("unknown filter type %q", d.Type)
	}
}

// NewRegistry returns a registry holding the built-in analyzers plus one
// analyzer per definition.
func NewRegistry(defs []AnalyzerDef) (*analysis.Registry, error) {
	r := analysis.NewRegistry()
	var errs []error
	for _, def := range defs {
		f, err := def.Filter()
		if err != nil {
			errs = append(errs, fmt.Errorf("analyzer %q: %w", def.Name, err))
			continue
		}
		if err := r.Register(def.Name, analysis.NewFilterAnalyzer(f)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
