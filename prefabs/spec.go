package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec lays out one arena: floor bounds, walls, spawn points and match rules.
type ArenaSpec struct {
	Name        string          `yaml:"name"`
	Bounds      BoundsSpec      `yaml:"bounds"`
	CellSize    float64         `yaml:"cell_size"`
	AgentRadius float64         `yaml:"agent_radius"`
	WallHeight  float64         `yaml:"wall_height"`
	FloorColor  YAMLColor       `yaml:"floor_color"`
	Obstacles   []ObstacleSpec  `yaml:"obstacles"`
	Player      SpawnSpec       `yaml:"player"`
	Enemies     []SpawnSpec     `yaml:"enemies"`
	Targets     TargetFieldSpec `yaml:"targets"`
	Match       MatchSpec       `yaml:"match"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MinZ float64 `yaml:"min_z"`
	MaxX float64 `yaml:"max_x"`
	MaxZ float64 `yaml:"max_z"`
}

// ObstacleSpec is an axis-aligned wall centred at (X, Z).
type ObstacleSpec struct {
	X      float64   `yaml:"x"`
	Z      float64   `yaml:"z"`
	HalfX  float64   `yaml:"half_x"`
	HalfZ  float64   `yaml:"half_z"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
}

// SpawnSpec places a prefab.
type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Yaw    float64 `yaml:"yaw"`
}

type TargetFieldSpec struct {
	Prefab   string     `yaml:"prefab"`
	Interval float64    `yaml:"interval"`
	MaxAlive int        `yaml:"max_alive"`
	Jitter   float64    `yaml:"jitter"`
	Points   []Vec3Spec `yaml:"points"`
}

type MatchSpec struct {
	Duration    float64 `yaml:"duration"`
	TargetScore int     `yaml:"target_score"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate reports every layout problem at once.
func (s ArenaSpec) Validate() error {
	var errs []string
	if s.Bounds.MaxX <= s.Bounds.MinX || s.Bounds.MaxZ <= s.Bounds.MinZ {
		errs = append(errs, "bounds must have positive extent")
	}
	if s.CellSize < 0 {
		errs = append(errs, "cell_size must be >= 0")
	}
	for i, o := range s.Obstacles {
		if o.HalfX <= 0 || o.HalfZ <= 0 {
			errs = append(errs, fmt.Sprintf("obstacles[%d]: half extents must be > 0", i))
		}
	}
	if s.Player.Prefab == "" {
		errs = append(errs, "player.prefab is required")
	}
	for i, e := range s.Enemies {
		if e.Prefab == "" {
			errs = append(errs, fmt.Sprintf("enemies[%d]: prefab is required", i))
		}
	}
	if len(s.Targets.Points) > 0 && s.Targets.Prefab == "" {
		errs = append(errs, "targets.prefab is required when points are set")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the color was not set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
