package system

import (
	"github.com/milk9111/vrarena/common"
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// ProjectileSystem spawns queued launches and sweeps live projectiles against
// the physics world. It implements core.ProjectileSpawner.
type ProjectileSystem struct {
	Damage  core.DamageApplier
	Effects core.EffectSpawner

	pending []core.ProjectileLaunch
}

func NewProjectileSystem(damage core.DamageApplier, effects core.EffectSpawner) *ProjectileSystem {
	return &ProjectileSystem{Damage: damage, Effects: effects}
}

// SpawnProjectile queues a launch; the entity appears on the next Update.
func (s *ProjectileSystem) SpawnProjectile(l core.ProjectileLaunch) {
	s.pending = append(s.pending, l)
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pending := s.pending
	s.pending = nil
	for _, l := range pending {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), core.NewProjectile(l))
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			Position: l.Origin,
			Rotation: common.LookRotation(l.Velocity),
		})
	}

	var rc core.Raycaster
	if pw := w.PhysicsWorld(); pw != nil {
		rc = pw
	}
	dt := w.Delta()

	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *core.Projectile) {
		step := p.Step(dt, rc, s.Damage)
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Position = p.Position
		}
		if step.Hit && s.Effects != nil {
			s.Effects.SpawnEffect(core.EffectImpact, step.RayHit.Point, step.RayHit.Normal)
		}
		if p.Done() {
			ecs.DestroyEntity(w, e)
		}
	})
}
