package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 10, cfg.Cities)
	require.Equal(t, FormatText, cfg.Format)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"one city", func(c *Config) { c.Cities = 1 }, ErrCitiesOutOfRange},
		{"too many cities", func(c *Config) { c.Cities = 201 }, ErrCitiesOutOfRange},
		{"start past end", func(c *Config) { c.Cities = 5; c.Start = 5 }, ErrStartOutOfRange},
		{"negative start", func(c *Config) { c.Start = -1 }, ErrStartOutOfRange},
		{"negative places", func(c *Config) { c.Places = -1 }, ErrPlacesOutOfRange},
		{"places past float precision", func(c *Config) { c.Places = 400 }, ErrPlacesOutOfRange},
		{"format", func(c *Config) { c.Format = "svg" }, ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.target)
		})
	}

	edge := Default()
	edge.Cities = MinCities
	edge.Start = 1
	require.NoError(t, edge.Validate())
	edge.Cities = MaxCities
	require.NoError(t, edge.Validate())
	edge.Places = MinPlaces
	require.NoError(t, edge.Validate())
	edge.Places = MaxPlaces
	require.NoError(t, edge.Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "nntour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities: 42\nseed: 7\nformat: json\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.Cities)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, FormatJSON, cfg.Format)
	require.Equal(t, ":8080", cfg.Listen, "absent keys keep defaults")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cities: [1, 2\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestApply_WeakTyping(t *testing.T) {
	cfg, err := Default().Apply(map[string]any{"cities": "25", "seed": "99", "start": "3"})
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Cities)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 3, cfg.Start)
	require.Equal(t, FormatText, cfg.Format)

	_, err = Default().Apply(map[string]any{"cities": "many"})
	require.Error(t, err)

	_, err = Default().Apply(map[string]any{"colour": "black"})
	require.Error(t, err)
}

func TestEffectiveSeed(t *testing.T) {
	fixed := func() time.Time { return time.Unix(0, 12345) }

	cfg := Default()
	require.Equal(t, int64(12345), cfg.EffectiveSeed(fixed))

	cfg.Seed = 8
	require.Equal(t, int64(8), cfg.EffectiveSeed(fixed))

	cfg.Seed = 0
	require.Equal(t, int64(1), cfg.EffectiveSeed(func() time.Time { return time.Unix(0, 0) }))
}
