package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Vec3Spec is a point in world space. Y is up.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
	// Yaw is in degrees, clockwise from +Z seen from above.
	Yaw float64 `yaml:"yaw"`
}

type HealthComponentSpec struct {
	Max          float64 `yaml:"max"`
	Team         string  `yaml:"team"`
	Invulnerable bool    `yaml:"invulnerable"`
}

type ShapeSpec struct {
	Radius  float64 `yaml:"radius"`
	HalfX   float64 `yaml:"half_x"`
	HalfZ   float64 `yaml:"half_z"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	OffsetZ float64 `yaml:"offset_z"`
}

type ColliderComponentSpec struct {
	Layer  string      `yaml:"layer"`
	Static bool        `yaml:"static"`
	Shapes []ShapeSpec `yaml:"shapes"`
}

// HitboxComponentSpec becomes one child collider entity damaging the parent's health.
type HitboxComponentSpec struct {
	Region     string  `yaml:"region"`
	Multiplier float64 `yaml:"multiplier"`
	ShapeSpec  `yaml:",inline"`
}

type WeaponComponentSpec struct {
	MaxAmmo            int     `yaml:"max_ammo"`
	Damage             float64 `yaml:"damage"`
	FireRate           float64 `yaml:"fire_rate"`
	ReloadTime         float64 `yaml:"reload_time"`
	Mode               string  `yaml:"mode"`
	Direction          string  `yaml:"direction"`
	Range              float64 `yaml:"range"`
	HitMask            string  `yaml:"hit_mask"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	Team               string  `yaml:"team"`
	AutoReload         *bool   `yaml:"auto_reload"`
	RequiresMagazine   bool    `yaml:"requires_magazine"`
	EjectPolicy        string  `yaml:"eject_policy"`
	EmptyCueInterval   float64 `yaml:"empty_cue_interval"`

	RequireGrip         bool    `yaml:"require_grip"`
	RequireTwoHands     bool    `yaml:"require_two_hands"`
	RequireBothTriggers bool    `yaml:"require_both_triggers"`
	TriggerThreshold    float64 `yaml:"trigger_threshold"`
}

type MagazineComponentSpec struct {
	Label    string `yaml:"label"`
	Inserted bool   `yaml:"inserted"`
}

type WeaponMountComponentSpec struct {
	Offset Vec3Spec `yaml:"offset"`
	Hand   string   `yaml:"hand"`
}

type AIComponentSpec struct {
	StartingState     string  `yaml:"starting_state"`
	DetectionRange    float64 `yaml:"detection_range"`
	FieldOfView       float64 `yaml:"field_of_view"`
	EyeHeight         float64 `yaml:"eye_height"`
	ObstacleMask      string  `yaml:"obstacle_mask"`
	AttackRange       float64 `yaml:"attack_range"`
	PatrolRadius      float64 `yaml:"patrol_radius"`
	PatrolWaitTime    float64 `yaml:"patrol_wait_time"`
	PatrolSpeed       float64 `yaml:"patrol_speed"`
	ChaseSpeed        float64 `yaml:"chase_speed"`
	AttackCooldown    float64 `yaml:"attack_cooldown"`
	RotationSpeed     float64 `yaml:"rotation_speed"`
	DeathRemovalDelay float64 `yaml:"death_removal_delay"`
	ArrivalTolerance  float64 `yaml:"arrival_tolerance"`
}

type AIWeaponComponentSpec struct {
	Accuracy        float64   `yaml:"accuracy"`
	MaxSpreadAngle  float64   `yaml:"max_spread_angle"`
	AimAtTarget     *bool     `yaml:"aim_at_target"`
	AimHeightOffset float64   `yaml:"aim_height_offset"`
	AutoReload      *bool     `yaml:"auto_reload"`
	UnlimitedAmmo   bool      `yaml:"unlimited_ammo"`
	MuzzleOffset    *Vec3Spec `yaml:"muzzle_offset"`
}

type NavAgentComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

type AIScriptComponentSpec struct {
	Path string `yaml:"path"`
}

type TargetComponentSpec struct {
	Hits   int `yaml:"hits"`
	Points int `yaml:"points"`
}

type TargetMotionComponentSpec struct {
	Mode      string  `yaml:"mode"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Speed     float64 `yaml:"speed"`
	Range     float64 `yaml:"range"`
}

type PlayerControllerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

type RespawnerComponentSpec struct {
	Delay           float64 `yaml:"delay"`
	AutoRespawn     *bool   `yaml:"auto_respawn"`
	SpawnProtection float64 `yaml:"spawn_protection"`
}

type TintComponentSpec struct {
	Color YAMLColor `yaml:"color"`
}
