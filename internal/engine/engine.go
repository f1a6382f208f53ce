package engine

import (
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

type engine struct {
	maxOccurrences int
}

// Config tunes the engine
type Config struct {
	// MaxOccurrences lowers the per-expansion ceiling. Zero keeps
	// schedule.MaxOccurrences; it can never be raised above it.
	MaxOccurrences int
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("max_occurrences", cfg.MaxOccurrences, 0, schedule.MaxOccurrences, vb)
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxOccurrences := cfg.MaxOccurrences
	if maxOccurrences == 0 {
		maxOccurrences = schedule.MaxOccurrences
	}
	return &engine{maxOccurrences: maxOccurrences}, nil
}
