package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vrarena/common"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// Autopilot plays the player in headless runs: it turns toward the nearest
// target or living enemy and fires once it is lined up.
type Autopilot struct {
	// AimTolerance is the largest yaw error in degrees that still fires.
	AimTolerance float64
	// TurnGain scales yaw error (radians) into the turn axis.
	TurnGain float64
}

func NewAutopilot() *Autopilot {
	return &Autopilot{AimTolerance: 3, TurnGain: 4}
}

// Drive writes the next tick's player input.
func (a *Autopilot) Drive(s *Sim) {
	in := s.Input()
	if in == nil {
		return
	}
	in.MoveX, in.MoveZ, in.Turn, in.Trigger = 0, 0, 0, 0

	w := s.World
	player := s.Arena.Player
	pose, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if wp, ok := ecs.Get(w, player, component.WeaponComponent.Kind()); ok {
		switch {
		case !wp.HasMagazine():
			in.Insert = true
			return
		case wp.CurrentAmmo() == 0 && !wp.IsReloading():
			in.Reload = true
			return
		}
	}

	aim, ok := a.nearest(w, pose.Position)
	if !ok {
		return
	}
	d := aim.Sub(pose.Position)
	want := math.Atan2(d.X(), d.Z())
	diff := wrapAngle(want - common.Yaw(pose.Rotation))

	in.Turn = mgl64.Clamp(diff*a.TurnGain, -1, 1)
	if math.Abs(diff) <= mgl64.DegToRad(a.AimTolerance) {
		in.Trigger = 1
		in.Fire = true
	}
}

func (a *Autopilot) nearest(w *ecs.World, from mgl64.Vec3) (mgl64.Vec3, bool) {
	best, found := math.Inf(1), false
	var at mgl64.Vec3
	consider := func(p mgl64.Vec3) {
		if d := common.PlanarDistance(from, p); d < best {
			best, at, found = d, p, true
		}
	}

	ecs.ForEach2(w, component.TargetTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.TargetTag, t *component.Transform) {
		consider(t.Position)
	})
	ecs.ForEach2(w, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, t *component.Transform) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.IsAlive() {
			return
		}
		consider(t.Position)
	})
	return at, found
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
