package system_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/ecs/system"
)

func TestProjectileHitsSoldierThroughPhysics(t *testing.T) {
	w := newWorld()
	router := system.NewDamageRouter(w, nil, nil)
	effects := system.NewEffectSpawner(w)
	projectiles := system.NewProjectileSystem(router, effects)
	_, _, health := spawnActor(t, w, mgl64.Vec3{0, 0, 10}, core.TeamEnemy, core.RegionBody,
		component.ColliderShape{Radius: 0.4, Height: 1.8})

	sched := ecs.NewScheduler(system.NewPhysicsSystem(), projectiles, system.NewTTLSystem())

	projectiles.SpawnProjectile(core.ProjectileLaunch{
		Origin:   mgl64.Vec3{0, 1, 0},
		Velocity: mgl64.Vec3{0, 0, 50},
		Damage:   25,
		Team:     core.TeamPlayer,
		Mask:     core.LayerAll,
	})
	assert.Zero(t, ecs.Count(w, component.ProjectileComponent.Kind()), "launches are queued until the next update")

	sched.Step(w, 0.1)
	require.Equal(t, 1, ecs.Count(w, component.ProjectileComponent.Kind()))
	_, p, _ := ecs.First(w, component.ProjectileComponent.Kind())
	assert.InDelta(t, 5.0, p.Position.Z(), 1e-9)

	sched.Step(w, 0.1)
	assert.Zero(t, ecs.Count(w, component.ProjectileComponent.Kind()), "projectile dies on collision")
	assert.Equal(t, 75.0, health.CurrentHealth())

	_, fx, ok := ecs.First(w, component.EffectComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, core.EffectImpact, fx.Kind)

	run(w, sched, 0.1, 5)
	assert.Zero(t, ecs.Count(w, component.EffectComponent.Kind()), "impact effects expire")
}

func TestProjectileExpires(t *testing.T) {
	w := newWorld()
	projectiles := system.NewProjectileSystem(nil, nil)
	projectiles.SpawnProjectile(core.ProjectileLaunch{Velocity: mgl64.Vec3{0, 0, 1}, Lifetime: 0.25})

	sched := ecs.NewScheduler(projectiles)
	run(w, sched, 0.1, 2)
	assert.Equal(t, 1, ecs.Count(w, component.ProjectileComponent.Kind()))
	sched.Step(w, 0.1)
	assert.Zero(t, ecs.Count(w, component.ProjectileComponent.Kind()))
}

func TestTTLSystem(t *testing.T) {
	w := newWorld()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.TTLComponent, &component.TTL{Seconds: 0.3})
	sched := ecs.NewScheduler(system.NewTTLSystem())

	run(w, sched, 0.1, 2)
	assert.True(t, ecs.IsAlive(w, e))
	run(w, sched, 0.1, 2)
	assert.False(t, ecs.IsAlive(w, e))
}
