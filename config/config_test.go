package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 60, cfg.Sim.TickRate)
	assert.Equal(t, 7200, cfg.Sim.MaxTicks)
	assert.Equal(t, "prefabs", cfg.Prefabs.Dir)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, "arena.yaml", cfg.Arena.Spec)
	assert.InDelta(t, 1.0/60, cfg.Sim.DT(), 1e-12)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vrarena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
sim:
  tick_rate: 30
  seed: 7
  headless: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30, cfg.Sim.TickRate)
	assert.Equal(t, int64(7), cfg.Sim.Seed)
	assert.True(t, cfg.Sim.Headless)
	assert.Equal(t, 7200, cfg.Sim.MaxTicks, "unset keys keep their defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VRARENA_SIM_MAX_TICKS", "120")
	t.Setenv("VRARENA_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Sim.MaxTicks)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config: read")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: []string{"log.level"}},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: []string{"log.format"}},
		{name: "zero tick rate", mutate: func(c *Config) { c.Sim.TickRate = 0 }, wantErr: []string{"sim.tick_rate"}},
		{name: "negative max ticks", mutate: func(c *Config) { c.Sim.MaxTicks = -1 }, wantErr: []string{"sim.max_ticks"}},
		{name: "low sample rate", mutate: func(c *Config) { c.Audio.SampleRate = 4000 }, wantErr: []string{"audio.sample_rate"}},
		{
			name: "several problems are joined",
			mutate: func(c *Config) {
				c.Sim.TickRate = -1
				c.Arena.Spec = ""
			},
			wantErr: []string{"sim.tick_rate", "; ", "arena.spec"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if len(tc.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestTickRateProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := *Default()
		cfg.Sim.TickRate = rapid.IntRange(-100, 1000).Draw(t, "rate")
		err := cfg.Validate()
		if (cfg.Sim.TickRate > 0) != (err == nil) {
			t.Fatalf("tick rate %d: err = %v", cfg.Sim.TickRate, err)
		}
	})
}
