// Package appconfig loads and validates the desdiag application config.
//
// The config is a YAML file; missing files and missing keys fall back to
// Default(). A few DESDIAG_* environment variables override file values, and
// the CLI applies its flags last.
package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/diagnosability"
)

// ErrInvalid is returned when a config fails validation.
var ErrInvalid = errors.New("appconfig: invalid config")

var validate = validator.New()

// Config is the root of the application config.
type Config struct {
	Storage   Storage   `yaml:"storage"`
	Builder   Builder   `yaml:"builder"`
	Generator Generator `yaml:"generator"`
	Sampler   Sampler   `yaml:"sampler"`
	Logging   Logging   `yaml:"logging"`
}

// Storage locates persisted automata and running logs.
type Storage struct {
	AutomataDir string `yaml:"automata_dir" validate:"required"`
	LogsDir     string `yaml:"logs_dir" validate:"required"`
}

// Builder holds the construction bounds and flags.
type Builder struct {
	MinStates   int    `yaml:"min_states" validate:"gt=10"`
	MaxStates   int    `yaml:"max_states" validate:"gtfield=MinStates"`
	ExtraNormal bool   `yaml:"extra_normal"`
	MultiFaulty bool   `yaml:"multi_faulty"`
	Seed        *int64 `yaml:"seed,omitempty"`
	FaultOrder  string `yaml:"fault_order" validate:"omitempty,oneof=reversed natural"`
}

// Generator holds the retry policy.
type Generator struct {
	MaxAttempts int    `yaml:"max_attempts" validate:"min=1"`
	Pairing     string `yaml:"pairing" validate:"omitempty,oneof=first all"`
}

// Sampler holds the running log sampling parameters.
type Sampler struct {
	MinSteps int `yaml:"min_steps" validate:"min=1"`
	MaxSteps int `yaml:"max_steps" validate:"gtfield=MinSteps"`
	Size     int `yaml:"size" validate:"min=1"`
}

// Logging selects the slog handler.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in config.
func Default() *Config {
	return &Config{
		Storage: Storage{AutomataDir: "automata", LogsDir: "logs"},
		Builder: Builder{MinStates: 11, MaxStates: 50, FaultOrder: "reversed"},
		Generator: Generator{
			MaxAttempts: 100,
			Pairing:     "first",
		},
		Sampler: Sampler{MinSteps: 10, MaxSteps: 100, Size: 1000},
		Logging: Logging{Level: "info", Format: "text"},
	}
}

// Load reads path over Default(), applies environment overrides and
// validates the result. An empty path or a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("appconfig: read %s: %w", path, err)
		default:
			if err := decode(bytes.NewReader(data), cfg); err != nil {
				return nil, fmt.Errorf("appconfig: %s: %w", path, err)
			}
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r over Default() and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, cfg); err != nil {
		return nil, fmt.Errorf("appconfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DESDIAG_AUTOMATA_DIR"); v != "" {
		cfg.Storage.AutomataDir = v
	}
	if v := os.Getenv("DESDIAG_LOGS_DIR"); v != "" {
		cfg.Storage.LogsDir = v
	}
	if v := os.Getenv("DESDIAG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("DESDIAG_SEED"); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Builder.Seed = &s
		}
	}
}

// Validate checks struct tags and the cross-field bounds.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("appconfig: nil config: %w", ErrInvalid)
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)",
					strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("appconfig: %s: %w", strings.Join(msgs, "; "), ErrInvalid)
		}
		return fmt.Errorf("appconfig: %v: %w", err, ErrInvalid)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Order returns the parsed fault ordering.
func (c *Config) Order() automaton.FaultOrder {
	o, err := automaton.ParseFaultOrder(c.Builder.FaultOrder)
	if err != nil {
		return automaton.OrderReversed
	}

	return o
}

// Pairing returns the parsed composite pairing.
func (c *Config) Pairing() diagnosability.Pairing {
	if c.Generator.Pairing == "all" {
		return diagnosability.PairAll
	}

	return diagnosability.PairFirst
}

// Level returns the slog level of Logging.Level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo
	}

	return l
}
