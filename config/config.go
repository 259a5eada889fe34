// Package config loads application settings with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// LogConfig holds structured logging settings.
type LogConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
}

// SimConfig controls the fixed-timestep loop.
type SimConfig struct {
	TickRate int   `mapstructure:"tick_rate"`
	Seed     int64 `mapstructure:"seed"`
	// MaxTicks caps a headless run. Zero means no cap.
	MaxTicks int  `mapstructure:"max_ticks"`
	Headless bool `mapstructure:"headless"`
}

// DT is the seconds per tick.
func (s SimConfig) DT() float64 {
	return 1 / float64(s.TickRate)
}

// PrefabsConfig points at the on-disk prefab overrides.
type PrefabsConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

type AudioConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	SampleRate int  `mapstructure:"sample_rate"`
}

type ArenaConfig struct {
	Spec string `mapstructure:"spec"`
}

// Config is the top-level application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Sim     SimConfig     `mapstructure:"sim"`
	Prefabs PrefabsConfig `mapstructure:"prefabs"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Arena   ArenaConfig   `mapstructure:"arena"`
}

// Validate reports every invalid setting in one error.
func (c Config) Validate() error {
	var errs []string

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Sprintf("log.format must be one of [json, console], got %q", c.Log.Format))
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Sprintf("sim.tick_rate must be > 0, got %d", c.Sim.TickRate))
	}
	if c.Sim.MaxTicks < 0 {
		errs = append(errs, fmt.Sprintf("sim.max_ticks must be >= 0, got %d", c.Sim.MaxTicks))
	}
	if c.Audio.SampleRate < 8000 {
		errs = append(errs, fmt.Sprintf("audio.sample_rate must be >= 8000, got %d", c.Audio.SampleRate))
	}
	if c.Arena.Spec == "" {
		errs = append(errs, "arena.spec must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads path (optional), applies VRARENA_* environment overrides and
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VRARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already configured viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, errors.New("config: nil viper")
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("sim.tick_rate", 60)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.max_ticks", 7200)
	v.SetDefault("sim.headless", false)

	v.SetDefault("prefabs.dir", "prefabs")
	v.SetDefault("prefabs.watch", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", 44100)

	v.SetDefault("arena.spec", "arena.yaml")
}
