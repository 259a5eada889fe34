package component

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vrarena/common"
)

// AIWeaponConfig tunes how an agent aims.
type AIWeaponConfig struct {
	// Accuracy in [0, 1]; 1 means no spread.
	Accuracy        float64
	MaxSpreadAngle  float64 // degrees
	AimAtTarget     bool
	AimHeightOffset float64
	AutoReload      bool
	UnlimitedAmmo   bool
	MuzzleOffset    mgl64.Vec3
}

func DefaultAIWeaponConfig() AIWeaponConfig {
	return AIWeaponConfig{
		Accuracy:        0.8,
		MaxSpreadAngle:  10,
		AimAtTarget:     true,
		AimHeightOffset: 1.2,
		AutoReload:      true,
		MuzzleOffset:    mgl64.Vec3{0, 1.4, 0.6},
	}
}

// AIWeaponHandler turns an attack decision into a Weapon shot with aim and spread.
type AIWeaponHandler struct {
	cfg    AIWeaponConfig
	weapon *Weapon
	owner  *Pose
	rng    *rand.Rand

	LastShot ShotResult
}

func NewAIWeaponHandler(cfg AIWeaponConfig, weapon *Weapon, owner *Pose, rng *rand.Rand) *AIWeaponHandler {
	if rng == nil {
		rng = common.NewRand(0)
	}
	return &AIWeaponHandler{cfg: cfg, weapon: weapon, owner: owner, rng: rng}
}

func (h *AIWeaponHandler) Config() AIWeaponConfig       { return h.cfg }
func (h *AIWeaponHandler) SetConfig(cfg AIWeaponConfig) { h.cfg = cfg }
func (h *AIWeaponHandler) Weapon() *Weapon              { return h.weapon }

// SpreadAngle is the maximum deviation in degrees for the configured accuracy.
func (h *AIWeaponHandler) SpreadAngle() float64 {
	return (1 - common.Clamp01(h.cfg.Accuracy)) * h.cfg.MaxSpreadAngle
}

// Attack implements AttackTrigger.
func (h *AIWeaponHandler) Attack(target mgl64.Vec3) bool {
	return h.Shoot(target).Fired
}

// FirePose returns the muzzle pose aimed at target, before spread.
func (h *AIWeaponHandler) FirePose(target mgl64.Vec3) Pose {
	owner := Pose{Rotation: mgl64.QuatIdent()}
	if h.owner != nil {
		owner = *h.owner
	}
	fire := Pose{Position: owner.Transform(h.cfg.MuzzleOffset), Rotation: owner.rotation()}
	if h.cfg.AimAtTarget {
		aim := target.Add(common.WorldUp.Mul(h.cfg.AimHeightOffset)).Sub(fire.Position)
		if aim.Len() > 0 {
			fire.Rotation = common.LookRotation(aim)
		}
	}
	return fire
}

// Shoot aims at target, applies accuracy spread and fires the weapon.
func (h *AIWeaponHandler) Shoot(target mgl64.Vec3) ShotResult {
	if h.weapon == nil {
		return ShotResult{Blocked: BlockedMissingCollaborator}
	}
	if h.cfg.UnlimitedAmmo && h.weapon.CurrentAmmo() == 0 {
		h.weapon.Refill()
	}
	// Agents hold fire while empty or reloading; the weapon's empty click is for players.
	switch {
	case h.weapon.IsReloading():
		h.LastShot = ShotResult{Blocked: BlockedReloading}
		return h.LastShot
	case h.weapon.CurrentAmmo() <= 0:
		h.LastShot = ShotResult{Blocked: BlockedEmpty}
		return h.LastShot
	}

	fire := h.FirePose(target)
	fire.Rotation = common.Spread(fire.Rotation, h.SpreadAngle(), h.rng)
	h.LastShot = h.weapon.Shoot(fire)
	return h.LastShot
}

// Tick requests a reload every tick while the weapon is empty.
func (h *AIWeaponHandler) Tick(float64) {
	if h.weapon == nil || !h.cfg.AutoReload {
		return
	}
	if h.weapon.CurrentAmmo() == 0 && !h.weapon.IsReloading() {
		h.weapon.StartReload()
	}
}
