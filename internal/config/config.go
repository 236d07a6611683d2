// Package config holds the run configuration shared by the CLI and the HTTP
// server: defaults, YAML loading, weakly typed overrides and range checks.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// City-count bounds of the interactive input.
const (
	MinCities     = 2
	MaxCities     = 200
	DefaultCities = 10
)

// Display precision bounds; float64 carries no more than 15 significant decimals.
const (
	MinPlaces = 0
	MaxPlaces = 15
)

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var (
	// ErrCitiesOutOfRange is returned when Cities is outside [MinCities, MaxCities].
	ErrCitiesOutOfRange = errors.New("config: cities out of range")

	// ErrStartOutOfRange is returned when Start is outside [0, Cities).
	ErrStartOutOfRange = errors.New("config: start out of range")

	// ErrPlacesOutOfRange is returned when Places is outside [MinPlaces, MaxPlaces].
	ErrPlacesOutOfRange = errors.New("config: places out of range")

	// ErrUnknownFormat is returned for an output format other than text, json or markdown.
	ErrUnknownFormat = errors.New("config: unknown format")
)

// Config is one run's configuration.
type Config struct {
	Cities   int    `yaml:"cities" mapstructure:"cities"`
	Seed     int64  `yaml:"seed" mapstructure:"seed"`
	Start    int    `yaml:"start" mapstructure:"start"`
	Format   string `yaml:"format" mapstructure:"format"`
	Places   int    `yaml:"places" mapstructure:"places"`
	Listen   string `yaml:"listen" mapstructure:"listen"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the out-of-the-box configuration.
// Seed 0 means "pick a fresh seed per run" (see EffectiveSeed).
func Default() Config {
	return Config{
		Cities:   DefaultCities,
		Seed:     0,
		Start:    0,
		Format:   FormatText,
		Places:   3,
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Apply decodes loosely typed values (query parameters, flag maps) over c
// and returns the result. Strings are converted to numbers where the field
// needs one; unknown keys are rejected.
func (c Config) Apply(values map[string]any) (Config, error) {
	out := c
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &out,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(values); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return out, nil
}

// Validate enforces the interactive input constraints.
func (c Config) Validate() error {
	if c.Cities < MinCities || c.Cities > MaxCities {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCitiesOutOfRange, c.Cities, MinCities, MaxCities)
	}
	if c.Start < 0 || c.Start >= c.Cities {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, c.Start, c.Cities)
	}
	if c.Places < MinPlaces || c.Places > MaxPlaces {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPlacesOutOfRange, c.Places, MinPlaces, MaxPlaces)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	return nil
}

// EffectiveSeed returns Seed, or a seed derived from now when Seed is 0.
// The result is never 0, so it can be logged and replayed verbatim.
func (c Config) EffectiveSeed(now func() time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	s := now().UnixNano()
	if s == 0 {
		s = 1
	}

	return s
}
