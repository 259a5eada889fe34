package system_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

func newWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	return w
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) *T {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, h.Kind(), v))
	return v
}

// spawnActor creates an actor with health and a single hitbox child of the given region.
func spawnActor(t *testing.T, w *ecs.World, pos mgl64.Vec3, team core.Team, region core.Region, shape component.ColliderShape) (actor, hitbox ecs.Entity, health *core.Health) {
	t.Helper()
	actor = ecs.CreateEntity(w)
	pose := core.NewPose(pos, 0)
	add(t, w, actor, component.TransformComponent, &pose)
	health = add(t, w, actor, component.HealthComponent, core.NewHealth(100, team))

	hitbox = ecs.CreateEntity(w)
	add(t, w, hitbox, component.HitboxComponent, core.NewHitbox(region, health))
	add(t, w, hitbox, component.ColliderComponent, &component.Collider{
		Layer:  core.LayerHitbox,
		Shapes: []component.ColliderShape{shape},
		Group:  uint64(actor),
	})
	return actor, hitbox, health
}

func headShape() component.ColliderShape {
	return component.ColliderShape{Radius: 0.3, Height: 0.4, Offset: mgl64.Vec3{0, 1.5, 0}}
}

func wall(t *testing.T, w *ecs.World, center mgl64.Vec3, halfX, halfZ, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	pose := core.NewPose(center, 0)
	add(t, w, e, component.TransformComponent, &pose)
	add(t, w, e, component.ObstacleTagComponent, &component.ObstacleTag{})
	add(t, w, e, component.ColliderComponent, &component.Collider{
		Layer:  core.LayerObstacle,
		Static: true,
		Shapes: []component.ColliderShape{{HalfX: halfX, HalfZ: halfZ, Height: height}},
	})
	return e
}

func run(w *ecs.World, s *ecs.Scheduler, dt float64, ticks int) {
	for range ticks {
		s.Step(w, dt)
	}
}
