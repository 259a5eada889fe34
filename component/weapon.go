package component

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// FireMode selects how a shot is resolved.
type FireMode int

const (
	FireHitscan FireMode = iota
	FireProjectile
)

func (m FireMode) String() string {
	if m == FireProjectile {
		return "projectile"
	}
	return "hitscan"
}

func ParseFireMode(s string) (FireMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hitscan", "raycast":
		return FireHitscan, nil
	case "projectile":
		return FireProjectile, nil
	default:
		return FireHitscan, fmt.Errorf("component: unknown fire mode %q", s)
	}
}

// EjectPolicy decides what happens to loaded rounds when the magazine is ejected.
type EjectPolicy int

const (
	EjectClearsAmmo EjectPolicy = iota
	EjectKeepsAmmo
)

func ParseEjectPolicy(s string) (EjectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clear":
		return EjectClearsAmmo, nil
	case "keep":
		return EjectKeepsAmmo, nil
	default:
		return EjectClearsAmmo, fmt.Errorf("component: unknown eject policy %q", s)
	}
}

// GripPolicy gates firing on how the weapon is held. With every flag off the
// weapon fires unheld. RequireGrip needs a primary hand whose trigger is past
// TriggerThreshold; RequireTwoHands also needs a secondary hand, and with
// RequireBothTriggers its trigger too.
type GripPolicy struct {
	RequireGrip         bool
	RequireTwoHands     bool
	RequireBothTriggers bool
	TriggerThreshold    float64
}

// HapticPulse is one vibration impulse.
type HapticPulse struct {
	Intensity float64
	Duration  float64
}

// WeaponConfig holds weapon tuning. Times are in seconds.
type WeaponConfig struct {
	MaxAmmo            int
	Damage             float64
	FireRate           float64
	ReloadTime         float64
	Mode               FireMode
	Direction          ShootDirection
	Range              float64
	HitMask            LayerMask
	ProjectileSpeed    float64
	ProjectileLifetime float64
	Team               Team
	AutoReload         bool
	RequiresMagazine   bool
	EjectPolicy        EjectPolicy
	EmptyCueInterval   float64
	Grip               GripPolicy

	ShotHaptic   HapticPulse
	EmptyHaptic  HapticPulse
	InsertHaptic HapticPulse
	EjectHaptic  HapticPulse
}

func DefaultWeaponConfig() WeaponConfig {
	return WeaponConfig{
		MaxAmmo:            10,
		Damage:             25,
		FireRate:           0.5,
		ReloadTime:         2,
		Mode:               FireHitscan,
		Direction:          ShootForward,
		Range:              100,
		HitMask:            LayerAll,
		ProjectileSpeed:    50,
		ProjectileLifetime: 5,
		Team:               TeamPlayer,
		AutoReload:         true,
		EjectPolicy:        EjectClearsAmmo,
		EmptyCueInterval:   0.5,
		Grip:               GripPolicy{TriggerThreshold: 0.5},
		ShotHaptic:         HapticPulse{Intensity: 0.5, Duration: 0.1},
		EmptyHaptic:        HapticPulse{Intensity: 0.1, Duration: 0.05},
		InsertHaptic:       HapticPulse{Intensity: 0.2, Duration: 0.1},
		EjectHaptic:        HapticPulse{Intensity: 0.15, Duration: 0.05},
	}
}

// WeaponDeps are the collaborators a weapon calls into. Any may be nil.
type WeaponDeps struct {
	Raycaster   Raycaster
	Damage      DamageApplier
	Projectiles ProjectileSpawner
	Cues        CueSink
	Haptics     HapticSink
	Effects     EffectSpawner
	Logger      *zap.Logger
	// Owner is the collider group hit-scan rays ignore.
	Owner uint64
}

// BlockReason explains why Shoot did not fire.
type BlockReason int

const (
	BlockedNone BlockReason = iota
	BlockedGrip
	BlockedEmpty
	BlockedReloading
	BlockedNoMagazine
	BlockedCooldown
	BlockedMissingCollaborator
)

func (b BlockReason) String() string {
	switch b {
	case BlockedGrip:
		return "grip"
	case BlockedEmpty:
		return "empty"
	case BlockedReloading:
		return "reloading"
	case BlockedNoMagazine:
		return "no_magazine"
	case BlockedCooldown:
		return "cooldown"
	case BlockedMissingCollaborator:
		return "missing_collaborator"
	default:
		return "none"
	}
}

// ShotResult describes one Shoot call.
type ShotResult struct {
	Fired      bool
	Blocked    BlockReason
	Direction  mgl64.Vec3
	Hit        bool
	RayHit     RayHit
	Outcome    DamageOutcome
	Projectile bool
}

// WeaponState is the reload state machine state. Firing is instantaneous and never observed.
type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponReloading
)

func (s WeaponState) String() string {
	if s == WeaponReloading {
		return "reloading"
	}
	return "idle"
}

// Weapon owns ammo, the fire-rate cooldown and the reload state machine.
type Weapon struct {
	cfg  WeaponConfig
	deps WeaponDeps
	log  *zap.Logger

	ammo         int
	cooldown     float64
	reloading    bool
	reloadLeft   float64
	hasMagazine  bool
	emptyCueLeft float64
	lastOrigin   mgl64.Vec3
	shotsFired   int

	primary   Hand
	secondary Hand
	triggers  [3]float64

	warned map[string]bool

	OnAmmoChanged func(current, max int)
}

// NewWeapon creates a loaded weapon. Magazine-fed weapons start with a magazine inserted.
func NewWeapon(cfg WeaponConfig, deps WeaponDeps) *Weapon {
	if cfg.MaxAmmo <= 0 {
		cfg.MaxAmmo = 1
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Weapon{
		cfg:         cfg,
		deps:        deps,
		log:         log,
		ammo:        cfg.MaxAmmo,
		hasMagazine: true,
		warned:      map[string]bool{},
	}
}

func (w *Weapon) Config() WeaponConfig { return w.cfg }

// SetConfig swaps tuning in place, clamping the loaded rounds to the new capacity.
func (w *Weapon) SetConfig(cfg WeaponConfig) {
	if cfg.MaxAmmo <= 0 {
		cfg.MaxAmmo = 1
	}
	w.cfg = cfg
	if w.ammo > cfg.MaxAmmo {
		w.ammo = cfg.MaxAmmo
		w.ammoChanged()
	}
}

// SetDeps replaces the collaborators.
func (w *Weapon) SetDeps(deps WeaponDeps) {
	w.deps = deps
	if deps.Logger != nil {
		w.log = deps.Logger
	}
}

func (w *Weapon) CurrentAmmo() int  { return w.ammo }
func (w *Weapon) MaxAmmo() int      { return w.cfg.MaxAmmo }
func (w *Weapon) IsReloading() bool { return w.reloading }
func (w *Weapon) HasMagazine() bool { return w.hasMagazine }
func (w *Weapon) ShotsFired() int   { return w.shotsFired }

func (w *Weapon) State() WeaponState {
	if w.reloading {
		return WeaponReloading
	}
	return WeaponIdle
}

// ReloadProgress returns the completed fraction of a timed reload, or 0 when idle.
func (w *Weapon) ReloadProgress() float64 {
	if !w.reloading || w.cfg.ReloadTime <= 0 {
		return 0
	}
	return 1 - w.reloadLeft/w.cfg.ReloadTime
}

// CanFire reports whether Shoot would fire right now.
func (w *Weapon) CanFire() bool {
	return w.blockReason() == BlockedNone
}

func (w *Weapon) blockReason() BlockReason {
	switch {
	case !w.GripReady():
		return BlockedGrip
	case w.reloading:
		return BlockedReloading
	case w.cooldown > 0:
		return BlockedCooldown
	case w.cfg.RequiresMagazine && !w.hasMagazine:
		return BlockedNoMagazine
	case w.ammo <= 0:
		return BlockedEmpty
	default:
		return BlockedNone
	}
}

// Shoot fires one round from origin along the configured axis.
func (w *Weapon) Shoot(origin Pose) ShotResult {
	w.lastOrigin = origin.Position

	if reason := w.blockReason(); reason != BlockedNone {
		if reason == BlockedEmpty {
			w.playEmpty()
		}
		return ShotResult{Blocked: reason}
	}
	if !w.collaboratorsReady() {
		return ShotResult{Blocked: BlockedMissingCollaborator}
	}

	w.ammo--
	w.cooldown = w.cfg.FireRate
	w.shotsFired++

	dir := origin.Axis(w.cfg.Direction).Normalize()
	res := ShotResult{Fired: true, Direction: dir}

	w.cue(CueShoot)
	if w.deps.Effects != nil {
		w.deps.Effects.SpawnEffect(EffectMuzzleFlash, origin.Position, dir)
	}
	w.pulse(w.cfg.ShotHaptic)

	switch w.cfg.Mode {
	case FireProjectile:
		w.deps.Projectiles.SpawnProjectile(ProjectileLaunch{
			Origin:   origin.Position,
			Velocity: dir.Mul(w.cfg.ProjectileSpeed),
			Damage:   w.cfg.Damage,
			Team:     w.cfg.Team,
			Lifetime: w.cfg.ProjectileLifetime,
			Mask:     w.cfg.HitMask,
			Owner:    w.deps.Owner,
		})
		res.Projectile = true
	default:
		hit, ok := w.deps.Raycaster.Raycast(Ray{
			Origin:      origin.Position,
			Direction:   dir,
			MaxDistance: w.cfg.Range,
			Mask:        w.cfg.HitMask,
			Ignore:      w.deps.Owner,
		})
		if ok {
			res.Hit = true
			res.RayHit = hit
			if w.deps.Effects != nil {
				w.deps.Effects.SpawnEffect(EffectImpact, hit.Point, hit.Normal)
			}
			if w.deps.Damage != nil {
				res.Outcome = w.deps.Damage.ApplyDamage(hit.Surface, hit.Point, w.cfg.Damage, w.cfg.Team)
			} else {
				w.warnOnce("damage", "weapon: no damage applier configured, hit ignored")
			}
		}
	}

	w.ammoChanged()
	if w.ammo == 0 && w.cfg.AutoReload && !w.cfg.RequiresMagazine {
		w.StartReload()
	}
	return res
}

// StartReload begins a timed reload. It is a no-op when already reloading or full.
func (w *Weapon) StartReload() bool {
	if w.reloading || w.ammo >= w.cfg.MaxAmmo {
		return false
	}
	w.cue(CueReload)
	if w.cfg.ReloadTime <= 0 {
		w.finishReload()
		return true
	}
	w.reloading = true
	w.reloadLeft = w.cfg.ReloadTime
	return true
}

// Refill loads a full magazine's worth of rounds without reloading.
func (w *Weapon) Refill() {
	if w.ammo == w.cfg.MaxAmmo {
		return
	}
	w.ammo = w.cfg.MaxAmmo
	w.ammoChanged()
}

// InsertMagazine completes any reload immediately and marks the magazine present.
func (w *Weapon) InsertMagazine() bool {
	if w.hasMagazine {
		return false
	}
	w.hasMagazine = true
	w.finishReload()
	w.cue(CueMagazineInsert)
	w.pulse(w.cfg.InsertHaptic)
	return true
}

// EjectMagazine removes the magazine. Under EjectClearsAmmo the loaded rounds are dropped.
func (w *Weapon) EjectMagazine() bool {
	if !w.hasMagazine {
		return false
	}
	w.hasMagazine = false
	w.reloading = false
	w.reloadLeft = 0
	if w.cfg.EjectPolicy == EjectClearsAmmo && w.ammo != 0 {
		w.ammo = 0
		w.ammoChanged()
	}
	w.cue(CueMagazineEject)
	w.pulse(w.cfg.EjectHaptic)
	return true
}

// Tick advances the cooldown, the empty-cue window and a pending reload.
func (w *Weapon) Tick(dt float64) {
	if w.cooldown > 0 {
		w.cooldown -= dt
	}
	if w.emptyCueLeft > 0 {
		w.emptyCueLeft -= dt
	}
	if !w.reloading {
		return
	}
	w.reloadLeft -= dt
	if w.reloadLeft <= 0 {
		w.finishReload()
	}
}

// Grab attaches hand. The first hand to grab becomes primary.
func (w *Weapon) Grab(hand Hand) {
	if !w.validHand(hand) || hand == w.primary || hand == w.secondary {
		return
	}
	switch {
	case w.primary == HandNone:
		w.primary = hand
	case w.secondary == HandNone:
		w.secondary = hand
	}
}

// Release detaches hand; a remaining secondary hand is promoted.
func (w *Weapon) Release(hand Hand) {
	if !w.validHand(hand) {
		return
	}
	switch hand {
	case w.primary:
		w.primary = w.secondary
		w.secondary = HandNone
	case w.secondary:
		w.secondary = HandNone
	default:
		return
	}
	w.triggers[hand] = 0
}

// SetTrigger records the analog trigger value of hand in [0, 1].
func (w *Weapon) SetTrigger(hand Hand, value float64) {
	if !w.validHand(hand) {
		return
	}
	w.triggers[hand] = value
}

func (w *Weapon) validHand(hand Hand) bool {
	return hand > HandNone && int(hand) < len(w.triggers)
}

func (w *Weapon) PrimaryHand() Hand   { return w.primary }
func (w *Weapon) SecondaryHand() Hand { return w.secondary }

// GripReady reports whether the grip policy allows firing.
func (w *Weapon) GripReady() bool {
	g := w.cfg.Grip
	if !g.RequireGrip && !g.RequireTwoHands && !g.RequireBothTriggers {
		return true
	}
	if w.primary == HandNone {
		return false
	}
	pressed := func(h Hand) bool { return w.triggers[h] > g.TriggerThreshold }
	if !g.RequireTwoHands {
		return pressed(w.primary)
	}
	if w.secondary == HandNone {
		return false
	}
	if g.RequireBothTriggers {
		return pressed(w.primary) && pressed(w.secondary)
	}
	return pressed(w.primary)
}

func (w *Weapon) finishReload() {
	w.reloading = false
	w.reloadLeft = 0
	if w.ammo != w.cfg.MaxAmmo {
		w.ammo = w.cfg.MaxAmmo
		w.ammoChanged()
	}
}

func (w *Weapon) collaboratorsReady() bool {
	switch w.cfg.Mode {
	case FireProjectile:
		if w.deps.Projectiles == nil {
			w.warnOnce("projectiles", "weapon: no projectile spawner configured, shot skipped")
			return false
		}
	default:
		if w.deps.Raycaster == nil {
			w.warnOnce("raycaster", "weapon: no raycaster configured, shot skipped")
			return false
		}
	}
	return true
}

func (w *Weapon) playEmpty() {
	if w.emptyCueLeft > 0 {
		return
	}
	w.emptyCueLeft = w.cfg.EmptyCueInterval
	w.cue(CueEmpty)
	w.pulse(w.cfg.EmptyHaptic)
}

func (w *Weapon) cue(id CueID) {
	if w.deps.Cues != nil {
		w.deps.Cues.PlayCue(id, w.lastOrigin)
	}
}

// pulse sends p to the primary hand and half of it to the secondary hand.
func (w *Weapon) pulse(p HapticPulse) {
	if w.deps.Haptics == nil || p.Intensity <= 0 {
		return
	}
	if w.primary != HandNone {
		w.deps.Haptics.TriggerHaptic(p.Intensity, p.Duration, w.primary)
	}
	if w.secondary != HandNone {
		w.deps.Haptics.TriggerHaptic(p.Intensity*0.5, p.Duration, w.secondary)
	}
}

func (w *Weapon) ammoChanged() {
	if w.OnAmmoChanged != nil {
		w.OnAmmoChanged(w.ammo, w.cfg.MaxAmmo)
	}
}

func (w *Weapon) warnOnce(key, msg string) {
	if w.warned[key] {
		return
	}
	w.warned[key] = true
	w.log.Warn(msg, zap.Uint64("owner", w.deps.Owner))
}
