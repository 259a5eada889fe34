package entity_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/ecs/entity"
	"github.com/milk9111/vrarena/ecs/system"
	"github.com/milk9111/vrarena/prefabs"
)

func newWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	return w
}

func newEnv(t *testing.T) *entity.Env {
	return &entity.Env{
		Grid:   core.NewNavGrid(-20, -20, 20, 20, 0.5),
		Logger: zaptest.NewLogger(t),
	}
}

// embeddedOnly disables disk overrides for the duration of the test.
func embeddedOnly(t *testing.T) {
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir("")
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })
}

// diskPrefabs serves the given prefab files from a temp dir.
func diskPrefabs(t *testing.T, files map[string]string) {
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir(dir)
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })
}

func hitboxesOf(w *ecs.World, owner ecs.Entity) map[core.Region]ecs.Entity {
	out := map[core.Region]ecs.Entity{}
	ecs.ForEach2(w, component.HitboxComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, hb *core.Hitbox, c *component.Collider) {
		if c.Group == uint64(owner) {
			out[hb.Region] = e
		}
	})
	return out
}

func TestBuildSoldier(t *testing.T) {
	embeddedOnly(t)
	w := newWorld()

	e, err := entity.BuildEntityAt(w, "soldier.yaml", newEnv(t), core.NewPose(mgl64.Vec3{2, 0, 3}, mgl64.DegToRad(180)))
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, e, component.EnemyTagComponent.Kind()))
	pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{2, 0, 3}, pose.Position)
	assert.InDelta(t, -1.0, pose.Forward().Z(), 1e-9)

	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 100.0, health.MaxHealth())
	assert.Equal(t, core.TeamEnemy, health.Team())

	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 30, weapon.CurrentAmmo())
	assert.False(t, weapon.Config().AutoReload)
	assert.Equal(t, core.TeamEnemy, weapon.Config().Team)

	ai, ok := ecs.Get(w, e, component.AIComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, core.AIPatrol, ai.CurrentState())
	assert.Equal(t, 1.6, ai.Config().Perception.EyeHeight)
	assert.Equal(t, core.LayerObstacle, ai.Config().Perception.ObstacleMask)
	assert.Equal(t, mgl64.Vec3{2, 0, 3}, ai.Spawn())

	handler, ok := ecs.Get(w, e, component.AIWeaponComponent.Kind())
	require.True(t, ok)
	assert.Same(t, weapon, handler.Weapon())

	nav, ok := ecs.Get(w, e, component.NavAgentComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 2.0, nav.Speed())

	script, ok := ecs.Get(w, e, component.AIScriptComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "sentry.tengo", script.Path)

	tint, ok := ecs.Get(w, e, component.TintComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}, tint.Color)

	boxes := hitboxesOf(w, e)
	require.Len(t, boxes, 3)
	head, _ := ecs.Get(w, boxes[core.RegionHead], component.HitboxComponent.Kind())
	assert.Same(t, health, head.Owner)
	assert.Equal(t, core.DefaultMultiplier(core.RegionHead), head.Multiplier)
}

func TestBuildPlayerRespawnsAtBuildPose(t *testing.T) {
	embeddedOnly(t)
	w := newWorld()
	spawn := core.NewPose(mgl64.Vec3{1, 0, -8}, 0)

	e, err := entity.BuildEntityAt(w, "player.yaml", newEnv(t), spawn)
	require.NoError(t, err)

	socket, ok := ecs.Get(w, e, component.MagazineSocketComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, socket.Current())
	assert.Equal(t, "pistol", socket.Current().Label)

	mount, ok := ecs.Get(w, e, component.WeaponMountComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, core.HandRight, mount.Hand)
	assert.Equal(t, mgl64.Vec3{0.25, 1.4, 0.3}, mount.Offset)

	assert.True(t, ecs.Has(w, e, component.InputComponent.Kind()))
	assert.Len(t, hitboxesOf(w, e), 2)

	weapon, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
	assert.True(t, weapon.Config().Grip.RequireGrip)
	assert.False(t, weapon.CanFire(), "the player weapon needs a hand on it")

	pose, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	respawner, _ := ecs.Get(w, e, component.RespawnerComponent.Kind())
	pose.Position = mgl64.Vec3{5, 0, 5}
	health.InstantKill()
	require.True(t, respawner.Pending())
	respawner.Respawn()

	assert.Equal(t, spawn.Position, pose.Position)
	assert.True(t, health.IsAlive())
}

func TestBuildEntityUsesPrefabTransform(t *testing.T) {
	embeddedOnly(t)
	w := newWorld()

	e, err := entity.BuildEntity(w, "player.yaml", newEnv(t))
	require.NoError(t, err)

	pose, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, mgl64.Vec3{0, 0, -10}, pose.Position)
}

func TestBuildEntityErrors(t *testing.T) {
	diskPrefabs(t, map[string]string{
		"empty.yaml":    "name: empty\n",
		"unknown.yaml":  "components:\n  transform: {}\n  wings: {}\n",
		"orphan.yaml":   "components:\n  transform: {}\n  magazine: {label: x, inserted: true}\n",
		"badteam.yaml":  "components:\n  health: {max: 10, team: pirates}\n",
		"hitboxes.yaml": "components:\n  transform: {}\n  health: {max: 10}\n  hitboxes:\n    - {region: body, radius: 0.3, height: 1}\n    - {region: tail, radius: 0.3, height: 1}\n",
		"nav.yaml":      "components:\n  transform: {}\n  nav_agent: {speed: 2}\n",
	})

	tests := []struct {
		name    string
		prefab  string
		env     *entity.Env
		wantErr string
	}{
		{name: "missing file", prefab: "nope.yaml", wantErr: "load"},
		{name: "no components", prefab: "empty.yaml", wantErr: "does not define components"},
		{name: "unknown component", prefab: "unknown.yaml", wantErr: `no builder for component "wings"`},
		{name: "magazine without weapon", prefab: "orphan.yaml", wantErr: "magazine requires weapon"},
		{name: "bad team", prefab: "badteam.yaml", wantErr: "unknown team"},
		{name: "bad hitbox region", prefab: "hitboxes.yaml", wantErr: "hitboxes[1]"},
		{name: "nav agent without grid", prefab: "nav.yaml", env: &entity.Env{}, wantErr: "navigation grid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld()
			_, err := entity.BuildEntity(w, tc.prefab, tc.env)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
			assert.Empty(t, ecs.Entities(w), "a failed build leaves nothing behind")
		})
	}
}

func TestPlayerTarget(t *testing.T) {
	w := newWorld()
	target := entity.PlayerTarget(w)

	_, ok := target.TargetPosition()
	assert.False(t, ok, "no player yet")

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	pose := core.NewPose(mgl64.Vec3{3, 0, 4}, 0)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &pose))
	health := core.NewHealth(10, core.TeamPlayer)
	require.NoError(t, ecs.Add(w, e, component.HealthComponent.Kind(), health))

	pos, ok := target.TargetPosition()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, pos)

	health.InstantKill()
	_, ok = target.TargetPosition()
	assert.False(t, ok, "dead players are not targets")
}

func TestBuiltSoldierShootsPlayer(t *testing.T) {
	embeddedOnly(t)
	w := newWorld()
	router := system.NewDamageRouter(w, nil, zaptest.NewLogger(t))
	env := newEnv(t)
	env.Damage = router

	player, err := entity.BuildEntityAt(w, "player.yaml", env, core.NewPose(mgl64.Vec3{0, 0, 0}, 0))
	require.NoError(t, err)
	soldier, err := entity.BuildEntityAt(w, "soldier.yaml", env, core.NewPose(mgl64.Vec3{0, 0, 6}, mgl64.DegToRad(180)))
	require.NoError(t, err)

	handler, _ := ecs.Get(w, soldier, component.AIWeaponComponent.Kind())
	cfg := handler.Config()
	cfg.Accuracy = 1
	handler.SetConfig(cfg)

	system.NewPhysicsSystem().Update(w)
	res := handler.Shoot(mgl64.Vec3{0, 0, 0})
	require.True(t, res.Fired)
	require.True(t, res.Hit, "the soldier's own hitboxes do not block its shot")

	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	assert.Less(t, health.CurrentHealth(), 100.0)
}
