package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gearscore/internal/model"
	"github.com/udisondev/gearscore/internal/rating"
)

// Rating holds all configuration for the rating tool.
type Rating struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// EstimateAll parallelism; 0 = GOMAXPROCS
	Workers int `yaml:"workers"`

	// Stat table overrides, applied on top of the built-in profiles.
	Stats []StatOverride `yaml:"stats"`
}

// StatOverride настраивает один stat kind: правит built-in профиль или
// определяет новый kind целиком.
type StatOverride struct {
	Kind     string    `yaml:"kind"`
	Rounding string    `yaml:"rounding"` // "tenth" | "whole"; required for new kinds
	Weight   *float64  `yaml:"weight"`   // nil = keep current
	Rolls    []float64 `yaml:"rolls"`    // empty = keep current
}

// DefaultRating returns Rating config with sensible defaults.
func DefaultRating() Rating {
	return Rating{
		LogLevel: "info",
	}
}

// LoadRating loads rating config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadRating(path string) (Rating, error) {
	cfg := DefaultRating()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config %s: workers must be >= 0, got %d", path, cfg.Workers)
	}

	return cfg, nil
}

// Profiles applies the configured overrides on top of base and returns the
// merged profile table. Base остаётся нетронутым: merge работает на копии.
//
// Для уже известного kind каждое поле override опционально; новый kind
// обязан задать rounding и rolls.
func (r Rating) Profiles(base map[model.StatKind]rating.StatProfile) (map[model.StatKind]rating.StatProfile, error) {
	out := make(map[model.StatKind]rating.StatProfile, len(base)+len(r.Stats))
	for kind, p := range base {
		out[kind] = rating.StatProfile{
			Rolls:    slices.Clone(p.Rolls),
			Weight:   p.Weight,
			Rounding: p.Rounding,
		}
	}

	for i, o := range r.Stats {
		if o.Kind == "" {
			return nil, fmt.Errorf("stats[%d]: kind is required", i)
		}
		kind := model.StatKind(o.Kind)
		p, known := out[kind]

		switch {
		case o.Rounding != "":
			mode, err := rating.ParseRounding(o.Rounding)
			if err != nil {
				return nil, fmt.Errorf("stats[%d] (%s): %w", i, o.Kind, err)
			}
			p.Rounding = mode
		case !known:
			return nil, fmt.Errorf("stats[%d] (%s): rounding is required for a new kind", i, o.Kind)
		}

		if o.Weight != nil {
			p.Weight = *o.Weight
		}

		switch {
		case len(o.Rolls) > 0:
			p.Rolls = slices.Clone(o.Rolls)
		case !known:
			return nil, fmt.Errorf("stats[%d] (%s): rolls are required for a new kind", i, o.Kind)
		}

		out[kind] = p
	}

	return out, nil
}
