package system

import (
	"github.com/go-gl/mathgl/mgl64"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// EffectSpawner turns effect requests into short-lived entities for the debug view.
type EffectSpawner struct {
	world    *ecs.World
	Lifetime map[core.EffectKind]float64
}

func NewEffectSpawner(w *ecs.World) *EffectSpawner {
	return &EffectSpawner{
		world: w,
		Lifetime: map[core.EffectKind]float64{
			core.EffectMuzzleFlash: 0.05,
			core.EffectImpact:      0.5,
		},
	}
}

// SpawnEffect implements core.EffectSpawner.
func (s *EffectSpawner) SpawnEffect(kind core.EffectKind, at, normal mgl64.Vec3) {
	if s == nil || s.world == nil {
		return
	}
	life, ok := s.Lifetime[kind]
	if !ok || life <= 0 {
		life = 0.1
	}
	e := ecs.CreateEntity(s.world)
	_ = ecs.Add(s.world, e, component.EffectComponent.Kind(), &component.Effect{Kind: kind, Normal: normal})
	_ = ecs.Add(s.world, e, component.TransformComponent.Kind(), &component.Transform{Position: at})
	_ = ecs.Add(s.world, e, component.TTLComponent.Kind(), &component.TTL{Seconds: life})
}
