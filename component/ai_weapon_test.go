package component_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/milk9111/vrarena/common"
	"github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/component/mocks"
)

func enemyWeapon(rc component.Raycaster) *component.Weapon {
	cfg := component.DefaultWeaponConfig()
	cfg.Team = component.TeamEnemy
	cfg.FireRate = 0
	return component.NewWeapon(cfg, component.WeaponDeps{Raycaster: rc})
}

func TestAIWeaponPerfectAim(t *testing.T) {
	rc := &scriptedRaycaster{}
	owner := facingZ(mgl64.Vec3{})
	cfg := component.DefaultAIWeaponConfig()
	cfg.Accuracy = 1
	h := component.NewAIWeaponHandler(cfg, enemyWeapon(rc), owner, common.NewRand(3))

	target := mgl64.Vec3{6, 0, 8}
	require.True(t, h.Attack(target))

	require.Len(t, rc.rays, 1)
	muzzle := mgl64.Vec3{0, 1.4, 0.6}
	assert.InDelta(t, 0.0, rc.rays[0].Origin.Sub(muzzle).Len(), 1e-9)
	want := target.Add(mgl64.Vec3{0, 1.2, 0}).Sub(muzzle).Normalize()
	assert.InDelta(t, 0.0, rc.rays[0].Direction.Sub(want).Len(), 1e-9)
	assert.Equal(t, 0.0, h.SpreadAngle())
}

func TestAIWeaponWithoutAimUsesOwnerFacing(t *testing.T) {
	rc := &scriptedRaycaster{}
	cfg := component.DefaultAIWeaponConfig()
	cfg.Accuracy = 1
	cfg.AimAtTarget = false
	h := component.NewAIWeaponHandler(cfg, enemyWeapon(rc), facingZ(mgl64.Vec3{}), nil)

	h.Shoot(mgl64.Vec3{10, 0, 0})

	require.Len(t, rc.rays, 1)
	assert.InDelta(t, 0.0, rc.rays[0].Direction.Sub(mgl64.Vec3{0, 0, 1}).Len(), 1e-9)
}

func TestAIWeaponUnlimitedAmmo(t *testing.T) {
	cfg := component.DefaultAIWeaponConfig()
	cfg.UnlimitedAmmo = true
	cfg.AutoReload = false
	w := enemyWeapon(&scriptedRaycaster{})
	wcfg := w.Config()
	wcfg.MaxAmmo = 1
	wcfg.AutoReload = false
	w.SetConfig(wcfg)
	h := component.NewAIWeaponHandler(cfg, w, facingZ(mgl64.Vec3{}), common.NewRand(1))

	for range 5 {
		require.True(t, h.Attack(mgl64.Vec3{0, 0, 5}))
	}
	assert.Equal(t, 5, w.ShotsFired())
}

func TestAIWeaponTickAutoReloads(t *testing.T) {
	w := enemyWeapon(&scriptedRaycaster{})
	wcfg := w.Config()
	wcfg.MaxAmmo = 1
	wcfg.AutoReload = false
	w.SetConfig(wcfg)
	h := component.NewAIWeaponHandler(component.DefaultAIWeaponConfig(), w, facingZ(mgl64.Vec3{}), nil)

	h.Attack(mgl64.Vec3{0, 0, 5})
	require.Equal(t, 0, w.CurrentAmmo())

	h.Tick(0.1)
	assert.True(t, w.IsReloading())
	w.Tick(wcfg.ReloadTime)
	assert.Equal(t, 1, w.CurrentAmmo())
}

func TestAIWeaponMissingWeapon(t *testing.T) {
	h := component.NewAIWeaponHandler(component.DefaultAIWeaponConfig(), nil, nil, nil)
	assert.False(t, h.Attack(mgl64.Vec3{}))
	h.Tick(1)
}

func TestProperty_SpreadStaysWithinCone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		accuracy := rapid.Float64Range(0, 1).Draw(rt, "accuracy")
		maxSpread := rapid.Float64Range(0, 30).Draw(rt, "max_spread")
		seed := rapid.Uint64Range(1, 1<<40).Draw(rt, "seed")
		x := rapid.Float64Range(-20, 20).Draw(rt, "x")
		z := rapid.Float64Range(2, 20).Draw(rt, "z")

		rc := &scriptedRaycaster{}
		cfg := component.DefaultAIWeaponConfig()
		cfg.Accuracy = accuracy
		cfg.MaxSpreadAngle = maxSpread
		h := component.NewAIWeaponHandler(cfg, enemyWeapon(rc), facingZ(mgl64.Vec3{}), common.NewRand(seed))
		target := mgl64.Vec3{x, 0, z}

		h.Shoot(target)

		aim := h.FirePose(target).Forward()
		got := common.AngleBetween(aim, rc.rays[0].Direction)
		// yaw and pitch are drawn independently, so the combined cone is wider by up to sqrt(2)
		if limit := h.SpreadAngle()*1.5 + 1e-6; got > limit {
			rt.Fatalf("deviation %v exceeds %v", got, limit)
		}
	})
}

func TestAIWeaponHoldsFireWhileEmptyOrReloading(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCueSink(ctrl)
	gomock.InOrder(
		cues.EXPECT().PlayCue(component.CueShoot, gomock.Any()),
		cues.EXPECT().PlayCue(component.CueReload, gomock.Any()),
	)

	wcfg := component.DefaultWeaponConfig()
	wcfg.Team = component.TeamEnemy
	wcfg.MaxAmmo = 1
	wcfg.FireRate = 0
	wcfg.AutoReload = false
	w := component.NewWeapon(wcfg, component.WeaponDeps{Raycaster: &scriptedRaycaster{}, Cues: cues})
	h := component.NewAIWeaponHandler(component.DefaultAIWeaponConfig(), w, facingZ(mgl64.Vec3{}), common.NewRand(1))
	target := mgl64.Vec3{0, 0, 5}

	require.True(t, h.Attack(target))

	assert.False(t, h.Attack(target))
	assert.Equal(t, component.BlockedEmpty, h.LastShot.Blocked)

	h.Tick(0.1)
	require.True(t, w.IsReloading())
	assert.False(t, h.Attack(target))
	assert.Equal(t, component.BlockedReloading, h.LastShot.Blocked)
	assert.Equal(t, 1, w.ShotsFired())
}
