package entity

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/milk9111/vrarena/common"
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/ecs/system"
	"github.com/milk9111/vrarena/prefabs"
)

// Env carries the world services that built components call into. Nil fields
// leave the matching collaborator unset.
type Env struct {
	Damage      core.DamageApplier
	Projectiles core.ProjectileSpawner
	Effects     core.EffectSpawner
	Cues        core.CueSink
	Haptics     core.HapticSink
	Grid        *core.NavGrid
	Rand        *rand.Rand
	Logger      *zap.Logger
}

func (env *Env) logger() *zap.Logger {
	if env == nil || env.Logger == nil {
		return zap.NewNop()
	}
	return env.Logger
}

func (env *Env) rand() *rand.Rand {
	if env == nil || env.Rand == nil {
		return common.NewRand(0)
	}
	return env.Rand
}

type buildContext struct {
	PrefabPath string
	Env        *Env
	// Pose overrides the prefab transform when set.
	Pose *core.Pose
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":        addPlayerTag,
	"enemy_tag":         addEnemyTag,
	"target_tag":        addTargetTag,
	"transform":         addTransform,
	"tint":              addTint,
	"health":            addHealth,
	"hitboxes":          addHitboxes,
	"collider":          addCollider,
	"weapon":            addWeapon,
	"magazine":          addMagazine,
	"weapon_mount":      addWeaponMount,
	"ai_weapon":         addAIWeapon,
	"nav_agent":         addNavAgent,
	"ai":                addAI,
	"ai_script":         addAIScript,
	"target":            addTarget,
	"target_motion":     addTargetMotion,
	"input":             addInput,
	"player_controller": addPlayerController,
	"respawner":         addRespawner,
}

// componentBuildOrder lists builders whose inputs come from earlier entries.
var componentBuildOrder = []string{
	"player_tag",
	"enemy_tag",
	"target_tag",
	"transform",
	"tint",
	"health",
	"hitboxes",
	"collider",
	"weapon",
	"magazine",
	"weapon_mount",
	"ai_weapon",
	"nav_agent",
	"ai",
	"ai_script",
	"target",
	"target_motion",
	"input",
	"player_controller",
	"respawner",
}

// BuildEntity creates an entity from a prefab file.
func BuildEntity(w *ecs.World, prefabPath string, env *Env) (ecs.Entity, error) {
	return build(w, prefabPath, env, nil)
}

// BuildEntityAt creates an entity from a prefab file placed at pose. Components
// that remember a home position (respawn point, motion anchor) use pose.
func BuildEntityAt(w *ecs.World, prefabPath string, env *Env, pose core.Pose) (ecs.Entity, error) {
	return build(w, prefabPath, env, &pose)
}

func build(w *ecs.World, prefabPath string, env *Env, pose *core.Pose) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Env: env, Pose: pose}

	remaining := make(map[string]any, len(spec.Components)+1)
	for k, v := range spec.Components {
		remaining[k] = v
	}
	if _, ok := remaining["transform"]; !ok && pose != nil {
		remaining["transform"] = nil
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	if len(remaining) > 0 {
		unknown := make([]string, 0, len(remaining))
		for name := range remaining {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		system.DestroyWithColliders(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			system.DestroyWithColliders(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}
	if err := ecs.Add(w, e, component.PrefabComponent.Kind(), &component.Prefab{Path: prefabPath}); err != nil {
		system.DestroyWithColliders(w, e)
		return 0, fmt.Errorf("build entity: %q: %w", prefabPath, err)
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addTargetTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TargetTagComponent.Kind(), &component.TargetTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	if ctx.Pose != nil {
		pose := *ctx.Pose
		return ecs.Add(w, e, component.TransformComponent.Kind(), &pose)
	}

	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	pose := core.NewPose(mgl64.Vec3{spec.X, spec.Y, spec.Z}, mgl64.DegToRad(spec.Yaw))
	return ecs.Add(w, e, component.TransformComponent.Kind(), &pose)
}

type tintSpec = prefabs.TintComponentSpec

func addTint(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tintSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tint spec: %w", err)
	}
	return ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: spec.Color.Color})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	team, err := core.ParseTeam(spec.Team)
	if err != nil {
		return err
	}
	if spec.Max <= 0 {
		spec.Max = 100
	}
	h := core.NewHealth(spec.Max, team)
	h.SetPermanentInvulnerable(spec.Invulnerable)
	return ecs.Add(w, e, component.HealthComponent.Kind(), h)
}

type hitboxSpec = prefabs.HitboxComponentSpec

// addHitboxes creates one child collider per hitbox. The children follow the
// parent's transform and are ignored by the parent's own rays.
func addHitboxes(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]hitboxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hitboxes spec: %w", err)
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("hitboxes require health on the same entity")
	}

	for i, spec := range specs {
		region, err := core.ParseRegion(spec.Region)
		if err != nil {
			return fmt.Errorf("hitboxes[%d]: %w", i, err)
		}
		hb := core.NewHitbox(region, health)
		if spec.Multiplier > 0 {
			hb.Multiplier = spec.Multiplier
		}

		child := ecs.CreateEntity(w)
		if err := ecs.Add(w, child, component.HitboxComponent.Kind(), hb); err != nil {
			return err
		}
		if err := ecs.Add(w, child, component.ColliderComponent.Kind(), &component.Collider{
			Layer:  core.LayerHitbox,
			Shapes: []component.ColliderShape{shapeFromSpec(spec.ShapeSpec)},
			Group:  uint64(e),
		}); err != nil {
			return err
		}
	}
	return nil
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	layer, err := core.ParseLayerMask(spec.Layer)
	if err != nil {
		return err
	}
	if len(spec.Shapes) == 0 {
		return fmt.Errorf("collider needs at least one shape")
	}
	shapes := make([]component.ColliderShape, 0, len(spec.Shapes))
	for _, s := range spec.Shapes {
		shapes = append(shapes, shapeFromSpec(s))
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Layer:  layer,
		Static: spec.Static,
		Shapes: shapes,
	})
}

func shapeFromSpec(s prefabs.ShapeSpec) component.ColliderShape {
	return component.ColliderShape{
		Radius: s.Radius,
		HalfX:  s.HalfX,
		HalfZ:  s.HalfZ,
		Height: s.Height,
		Offset: mgl64.Vec3{s.OffsetX, s.OffsetY, s.OffsetZ},
	}
}

type weaponSpec = prefabs.WeaponComponentSpec

func addWeapon(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[weaponSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon spec: %w", err)
	}
	cfg, err := weaponConfigFromSpec(spec)
	if err != nil {
		return err
	}

	deps := core.WeaponDeps{Logger: ctx.Env.logger(), Owner: uint64(e)}
	if pw := w.PhysicsWorld(); pw != nil {
		deps.Raycaster = pw
	}
	if env := ctx.Env; env != nil {
		deps.Damage = env.Damage
		deps.Projectiles = env.Projectiles
		deps.Cues = env.Cues
		deps.Haptics = env.Haptics
		deps.Effects = env.Effects
	}
	return ecs.Add(w, e, component.WeaponComponent.Kind(), core.NewWeapon(cfg, deps))
}

func weaponConfigFromSpec(spec weaponSpec) (core.WeaponConfig, error) {
	cfg := core.DefaultWeaponConfig()
	if spec.MaxAmmo > 0 {
		cfg.MaxAmmo = spec.MaxAmmo
	}
	if spec.Damage > 0 {
		cfg.Damage = spec.Damage
	}
	if spec.FireRate > 0 {
		cfg.FireRate = spec.FireRate
	}
	if spec.ReloadTime > 0 {
		cfg.ReloadTime = spec.ReloadTime
	}
	if spec.Range > 0 {
		cfg.Range = spec.Range
	}
	if spec.ProjectileSpeed > 0 {
		cfg.ProjectileSpeed = spec.ProjectileSpeed
	}
	if spec.ProjectileLifetime > 0 {
		cfg.ProjectileLifetime = spec.ProjectileLifetime
	}
	if spec.EmptyCueInterval > 0 {
		cfg.EmptyCueInterval = spec.EmptyCueInterval
	}
	if spec.AutoReload != nil {
		cfg.AutoReload = *spec.AutoReload
	}
	cfg.RequiresMagazine = spec.RequiresMagazine
	cfg.Grip.RequireGrip = spec.RequireGrip
	cfg.Grip.RequireTwoHands = spec.RequireTwoHands
	cfg.Grip.RequireBothTriggers = spec.RequireBothTriggers
	if spec.TriggerThreshold > 0 {
		cfg.Grip.TriggerThreshold = spec.TriggerThreshold
	}

	var err error
	if spec.Mode != "" {
		if cfg.Mode, err = core.ParseFireMode(spec.Mode); err != nil {
			return cfg, err
		}
	}
	if spec.Direction != "" {
		if cfg.Direction, err = core.ParseShootDirection(spec.Direction); err != nil {
			return cfg, err
		}
	}
	if spec.HitMask != "" {
		if cfg.HitMask, err = core.ParseLayerMask(spec.HitMask); err != nil {
			return cfg, err
		}
	}
	if spec.Team != "" {
		if cfg.Team, err = core.ParseTeam(spec.Team); err != nil {
			return cfg, err
		}
	}
	if spec.EjectPolicy != "" {
		if cfg.EjectPolicy, err = core.ParseEjectPolicy(spec.EjectPolicy); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

type magazineSpec = prefabs.MagazineComponentSpec

func addMagazine(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[magazineSpec](raw)
	if err != nil {
		return fmt.Errorf("decode magazine spec: %w", err)
	}
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return fmt.Errorf("magazine requires weapon on the same entity")
	}

	socket := core.NewMagazineSocket(weapon)
	if !spec.Inserted {
		socket.Eject()
	} else if spec.Label != "" {
		socket.Current().Label = spec.Label
	}
	return ecs.Add(w, e, component.MagazineSocketComponent.Kind(), socket)
}

type weaponMountSpec = prefabs.WeaponMountComponentSpec

func addWeaponMount(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[weaponMountSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon_mount spec: %w", err)
	}
	hand, err := core.ParseHand(spec.Hand)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.WeaponMountComponent.Kind(), &component.WeaponMount{
		Offset: vec3(spec.Offset),
		Hand:   hand,
	})
}

type aiWeaponSpec = prefabs.AIWeaponComponentSpec

func addAIWeapon(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[aiWeaponSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ai_weapon spec: %w", err)
	}
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return fmt.Errorf("ai_weapon requires weapon on the same entity")
	}
	pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("ai_weapon requires transform on the same entity")
	}

	h := core.NewAIWeaponHandler(aiWeaponConfigFromSpec(spec), weapon, pose, ctx.Env.rand())
	return ecs.Add(w, e, component.AIWeaponComponent.Kind(), h)
}

func aiWeaponConfigFromSpec(spec aiWeaponSpec) core.AIWeaponConfig {
	cfg := core.DefaultAIWeaponConfig()
	if spec.Accuracy > 0 {
		cfg.Accuracy = spec.Accuracy
	}
	if spec.MaxSpreadAngle > 0 {
		cfg.MaxSpreadAngle = spec.MaxSpreadAngle
	}
	if spec.AimAtTarget != nil {
		cfg.AimAtTarget = *spec.AimAtTarget
	}
	if spec.AimHeightOffset != 0 {
		cfg.AimHeightOffset = spec.AimHeightOffset
	}
	if spec.AutoReload != nil {
		cfg.AutoReload = *spec.AutoReload
	}
	if spec.MuzzleOffset != nil {
		cfg.MuzzleOffset = vec3(*spec.MuzzleOffset)
	}
	cfg.UnlimitedAmmo = spec.UnlimitedAmmo
	return cfg
}

type navAgentSpec = prefabs.NavAgentComponentSpec

func addNavAgent(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[navAgentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode nav_agent spec: %w", err)
	}
	if ctx.Env == nil || ctx.Env.Grid == nil {
		return fmt.Errorf("nav_agent requires a navigation grid")
	}
	pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("nav_agent requires transform on the same entity")
	}
	agent := core.NewNavAgent(ctx.Env.Grid, pose)
	agent.SetSpeed(spec.Speed)
	return ecs.Add(w, e, component.NavAgentComponent.Kind(), agent)
}

type aiSpec = prefabs.AIComponentSpec

func addAI(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[aiSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ai spec: %w", err)
	}
	cfg, err := aiConfigFromSpec(spec)
	if err != nil {
		return err
	}
	pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("ai requires transform on the same entity")
	}

	deps := core.AIDeps{
		Pose:   pose,
		Target: PlayerTarget(w),
		Active: func() bool { return system.MatchActive(w) },
		Rand:   ctx.Env.rand(),
		Logger: ctx.Env.logger(),
		Group:  uint64(e),
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		deps.Health = h
	}
	if nav, ok := ecs.Get(w, e, component.NavAgentComponent.Kind()); ok {
		deps.Navigator = nav
	}
	if pw := w.PhysicsWorld(); pw != nil {
		deps.Raycaster = pw
	}
	if handler, ok := ecs.Get(w, e, component.AIWeaponComponent.Kind()); ok {
		deps.Weapon = handler
	}
	return ecs.Add(w, e, component.AIComponent.Kind(), core.NewAIController(cfg, deps))
}

func aiConfigFromSpec(spec aiSpec) (core.AIConfig, error) {
	cfg := core.DefaultAIConfig()
	if spec.StartingState != "" {
		st, err := core.ParseAIState(spec.StartingState)
		if err != nil {
			return cfg, err
		}
		cfg.StartingState = st
	}
	if spec.ObstacleMask != "" {
		mask, err := core.ParseLayerMask(spec.ObstacleMask)
		if err != nil {
			return cfg, err
		}
		cfg.Perception.ObstacleMask = mask
	}

	setPositive(&cfg.Perception.DetectionRange, spec.DetectionRange)
	setPositive(&cfg.Perception.FieldOfView, spec.FieldOfView)
	setPositive(&cfg.Perception.EyeHeight, spec.EyeHeight)
	setPositive(&cfg.AttackRange, spec.AttackRange)
	setPositive(&cfg.PatrolRadius, spec.PatrolRadius)
	setPositive(&cfg.PatrolWaitTime, spec.PatrolWaitTime)
	setPositive(&cfg.PatrolSpeed, spec.PatrolSpeed)
	setPositive(&cfg.ChaseSpeed, spec.ChaseSpeed)
	setPositive(&cfg.AttackCooldown, spec.AttackCooldown)
	setPositive(&cfg.RotationSpeed, spec.RotationSpeed)
	setPositive(&cfg.DeathRemovalDelay, spec.DeathRemovalDelay)
	setPositive(&cfg.ArrivalTolerance, spec.ArrivalTolerance)
	return cfg, nil
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

type aiScriptSpec = prefabs.AIScriptComponentSpec

func addAIScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[aiScriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ai_script spec: %w", err)
	}
	if spec.Path == "" {
		return fmt.Errorf("ai_script path is required")
	}
	return ecs.Add(w, e, component.AIScriptComponent.Kind(), &component.AIScript{Path: spec.Path})
}

type targetSpec = prefabs.TargetComponentSpec

func addTarget(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[targetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode target spec: %w", err)
	}
	return ecs.Add(w, e, component.TargetComponent.Kind(), core.NewTarget(spec.Hits, spec.Points))
}

type targetMotionSpec = prefabs.TargetMotionComponentSpec

func addTargetMotion(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[targetMotionSpec](raw)
	if err != nil {
		return fmt.Errorf("decode target_motion spec: %w", err)
	}
	mode, err := core.ParseMotionMode(spec.Mode)
	if err != nil {
		return err
	}
	pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("target_motion requires transform on the same entity")
	}
	m := core.NewTargetMotion(core.MotionConfig{
		Mode:      mode,
		Amplitude: spec.Amplitude,
		Frequency: spec.Frequency,
		Speed:     spec.Speed,
		Range:     spec.Range,
	}, *pose, ctx.Env.rand())
	return ecs.Add(w, e, component.TargetMotionComponent.Kind(), m)
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type playerControllerSpec = prefabs.PlayerControllerComponentSpec

func addPlayerController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerControllerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player_controller spec: %w", err)
	}
	pc := &component.PlayerController{MoveSpeed: 4, TurnSpeed: 2.5}
	setPositive(&pc.MoveSpeed, spec.MoveSpeed)
	setPositive(&pc.TurnSpeed, spec.TurnSpeed)
	return ecs.Add(w, e, component.PlayerControllerComponent.Kind(), pc)
}

type respawnerSpec = prefabs.RespawnerComponentSpec

func addRespawner(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[respawnerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode respawner spec: %w", err)
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("respawner requires health on the same entity")
	}
	pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("respawner requires transform on the same entity")
	}

	cfg := core.DefaultRespawnConfig()
	if spec.Delay > 0 {
		cfg.Delay = spec.Delay
	}
	if spec.AutoRespawn != nil {
		cfg.AutoRespawn = *spec.AutoRespawn
	}
	if spec.SpawnProtection > 0 {
		cfg.SpawnProtection = spec.SpawnProtection
	}
	return ecs.Add(w, e, component.RespawnerComponent.Kind(), core.NewRespawner(cfg, health, pose, *pose))
}

func vec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
