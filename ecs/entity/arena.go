package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/ecs/system"
	"github.com/milk9111/vrarena/prefabs"
)

// Arena is what LoadArenaToWorld placed into a world.
type Arena struct {
	Spec      *prefabs.ArenaSpec
	Grid      *core.NavGrid
	Match     *core.Match
	Spawner   *core.TargetSpawner
	Player    ecs.Entity
	Enemies   []ecs.Entity
	Obstacles []ecs.Entity
}

// LoadArenaToWorld creates walls, the navigation grid, the match singletons,
// the player and the enemies described by spec. env.Grid is set to the arena
// grid so nav agents built later walk it.
func LoadArenaToWorld(w *ecs.World, spec *prefabs.ArenaSpec, env *Env) (*Arena, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("arena: world and spec are required")
	}
	if env == nil {
		env = &Env{}
	}

	b := spec.Bounds
	arena := &Arena{
		Spec: spec,
		Grid: core.NewNavGrid(b.MinX, b.MinZ, b.MaxX, b.MaxZ, spec.CellSize),
	}
	env.Grid = arena.Grid

	for i, o := range spec.Obstacles {
		e, err := addObstacle(w, o, spec.WallHeight)
		if err != nil {
			return nil, fmt.Errorf("arena: obstacles[%d]: %w", i, err)
		}
		arena.Grid.BlockRect(o.X-o.HalfX, o.Z-o.HalfZ, o.X+o.HalfX, o.Z+o.HalfZ, spec.AgentRadius)
		arena.Obstacles = append(arena.Obstacles, e)
	}

	matchCfg := core.DefaultMatchConfig()
	if spec.Match.Duration > 0 {
		matchCfg.Duration = spec.Match.Duration
	}
	if spec.Match.TargetScore > 0 {
		matchCfg.TargetScore = spec.Match.TargetScore
	}
	arena.Match = core.NewMatch(matchCfg, env.Cues, env.logger())

	singleton := ecs.CreateEntity(w)
	if err := ecs.Add(w, singleton, component.MatchComponent.Kind(), arena.Match); err != nil {
		return nil, fmt.Errorf("arena: add match: %w", err)
	}
	if err := ecs.Add(w, singleton, component.MatchStatsComponent.Kind(), &component.MatchStats{}); err != nil {
		return nil, fmt.Errorf("arena: add match stats: %w", err)
	}

	if t := spec.Targets; len(t.Points) > 0 {
		points := make([]mgl64.Vec3, 0, len(t.Points))
		for _, p := range t.Points {
			points = append(points, vec3(p))
		}
		cfg := core.DefaultSpawnerConfig()
		if t.Interval > 0 {
			cfg.Interval = t.Interval
		}
		if t.MaxAlive > 0 {
			cfg.MaxAlive = t.MaxAlive
		}
		cfg.Jitter = t.Jitter
		cfg.Points = points
		arena.Spawner = core.NewTargetSpawner(cfg, env.rand())
		if err := ecs.Add(w, singleton, component.SpawnerComponent.Kind(), arena.Spawner); err != nil {
			return nil, fmt.Errorf("arena: add spawner: %w", err)
		}
	}

	player, err := NewPlayerAt(w, spec.Player.Prefab, env, spawnPose(spec.Player))
	if err != nil {
		return nil, fmt.Errorf("arena: player: %w", err)
	}
	arena.Player = player

	for i, s := range spec.Enemies {
		e, err := BuildEntityAt(w, s.Prefab, env, spawnPose(s))
		if err != nil {
			return nil, fmt.Errorf("arena: enemies[%d]: %w", i, err)
		}
		arena.Enemies = append(arena.Enemies, e)
	}

	return arena, nil
}

// TargetSpawnFunc builds prefab targets for the spawner system.
func TargetSpawnFunc(prefab string, env *Env) system.SpawnFunc {
	return func(w *ecs.World, at mgl64.Vec3) (ecs.Entity, error) {
		return BuildEntityAt(w, prefab, env, core.NewPose(at, 0))
	}
}

func addObstacle(w *ecs.World, o prefabs.ObstacleSpec, defaultHeight float64) (ecs.Entity, error) {
	height := o.Height
	if height <= 0 {
		height = defaultHeight
	}
	if height <= 0 {
		height = 3
	}

	e := ecs.CreateEntity(w)
	pose := core.NewPose(mgl64.Vec3{o.X, 0, o.Z}, 0)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &pose); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
		return 0, err
	}
	if o.Color.Color != nil {
		if err := ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: o.Color.Color}); err != nil {
			return 0, err
		}
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Layer:  core.LayerObstacle,
		Static: true,
		Shapes: []component.ColliderShape{{HalfX: o.HalfX, HalfZ: o.HalfZ, Height: height}},
	}); err != nil {
		return 0, err
	}
	return e, nil
}

func spawnPose(s prefabs.SpawnSpec) core.Pose {
	return core.NewPose(mgl64.Vec3{s.X, s.Y, s.Z}, mgl64.DegToRad(s.Yaw))
}
