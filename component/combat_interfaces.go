package component

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Raycaster,Navigator,CueSink,HapticSink,EffectSpawner,ProjectileSpawner,DamageApplier

// SurfaceID identifies a struck collider. Zero means no surface.
type SurfaceID uint64

// LayerMask selects collider layers for ray queries.
type LayerMask uint32

const (
	LayerObstacle LayerMask = 1 << iota
	LayerHitbox
	LayerTarget

	LayerNone LayerMask = 0
	LayerAll  LayerMask = LayerObstacle | LayerHitbox | LayerTarget
)

// ParseLayerMask parses layer names joined by "|" or ",", e.g. "obstacle|hitbox".
func ParseLayerMask(s string) (LayerMask, error) {
	var mask LayerMask
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "obstacle":
			mask |= LayerObstacle
		case "hitbox":
			mask |= LayerHitbox
		case "target":
			mask |= LayerTarget
		case "all":
			mask |= LayerAll
		case "none", "":
		default:
			return LayerNone, fmt.Errorf("component: unknown layer %q", part)
		}
	}
	return mask, nil
}

// Ray is a bounded ray query. Colliders belonging to Ignore are skipped.
type Ray struct {
	Origin      mgl64.Vec3
	Direction   mgl64.Vec3
	MaxDistance float64
	Mask        LayerMask
	Ignore      uint64
}

// RayHit is the nearest intersection of a Ray.
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Surface  SurfaceID
}

// Raycaster answers geometric ray queries.
type Raycaster interface {
	Raycast(ray Ray) (RayHit, bool)
}

// Navigator moves an agent over walkable space.
type Navigator interface {
	FindReachablePoint(center mgl64.Vec3, radius float64) (mgl64.Vec3, bool)
	SetDestination(point mgl64.Vec3) bool
	RemainingDistance() float64
	SetSpeed(speed float64)
	Stop()
	Resume()
}

// CueID names an audio cue.
type CueID string

const (
	CueShoot           CueID = "shoot"
	CueEmpty           CueID = "empty"
	CueReload          CueID = "reload"
	CueMagazineInsert  CueID = "magazine_insert"
	CueMagazineEject   CueID = "magazine_eject"
	CueHit             CueID = "hit"
	CueTargetDestroyed CueID = "target_destroyed"
	CueDeath           CueID = "death"
	CueGameStart       CueID = "game_start"
	CueGameOver        CueID = "game_over"
)

// CueSink plays fire-and-forget audio cues.
type CueSink interface {
	PlayCue(id CueID, at mgl64.Vec3)
}

// Hand identifies a VR controller.
type Hand int

const (
	HandNone Hand = iota
	HandLeft
	HandRight
)

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "none"
	}
}

// ParseHand maps "left", "right" or "" to a Hand.
func ParseHand(s string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return HandNone, nil
	case "left":
		return HandLeft, nil
	case "right":
		return HandRight, nil
	default:
		return HandNone, fmt.Errorf("component: unknown hand %q", s)
	}
}

// HapticSink drives controller vibration.
type HapticSink interface {
	TriggerHaptic(intensity, duration float64, hand Hand)
}

// EffectKind names a transient visual effect.
type EffectKind string

const (
	EffectMuzzleFlash EffectKind = "muzzle_flash"
	EffectImpact      EffectKind = "impact"
)

// EffectSpawner spawns transient effects. Nothing is returned to the caller.
type EffectSpawner interface {
	SpawnEffect(kind EffectKind, at, normal mgl64.Vec3)
}

// ProjectileSpawner creates projectile entities.
type ProjectileSpawner interface {
	SpawnProjectile(launch ProjectileLaunch)
}

// DamageApplier routes damage to whatever is damageable on a surface.
type DamageApplier interface {
	ApplyDamage(surface SurfaceID, point mgl64.Vec3, amount float64, attacker Team) DamageOutcome
}
