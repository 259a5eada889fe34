// Package sim assembles an arena world and its tick schedule. Both the windowed
// game and the headless runner drive a Sim.
package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/ecs/entity"
	"github.com/milk9111/vrarena/ecs/system"
	"github.com/milk9111/vrarena/prefabs"
)

// Options configures New. Zero values pick defaults.
type Options struct {
	ArenaSpec string
	Rand      *rand.Rand
	Logger    *zap.Logger
	// Cues receive every audio cue in order.
	Cues    []core.CueSink
	Haptics core.HapticSink
}

// Sim owns one arena world.
type Sim struct {
	World     *ecs.World
	Arena     *entity.Arena
	Scheduler *ecs.Scheduler
	Damage    *system.DamageRouter
	Cues      *system.CueBus
	AI        *system.AISystem
	Stats     *system.StatsSystem

	log *zap.Logger
}

// New builds the arena described by opts.ArenaSpec and wires every system in
// tick order.
func New(opts Options) (*Sim, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	specName := opts.ArenaSpec
	if specName == "" {
		specName = "arena.yaml"
	}

	spec, err := prefabs.LoadArenaSpec(specName)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	cues := system.NewCueBus(log, opts.Cues...)
	damage := system.NewDamageRouter(w, cues, log)
	effects := system.NewEffectSpawner(w)
	projectiles := system.NewProjectileSystem(damage, effects)

	env := &entity.Env{
		Damage:      damage,
		Projectiles: projectiles,
		Effects:     effects,
		Cues:        cues,
		Haptics:     opts.Haptics,
		Rand:        opts.Rand,
		Logger:      log,
	}

	arena, err := entity.LoadArenaToWorld(w, spec, env)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	var spawn system.SpawnFunc
	if spec.Targets.Prefab != "" {
		spawn = entity.TargetSpawnFunc(spec.Targets.Prefab, env)
	}

	s := &Sim{
		World:  w,
		Arena:  arena,
		Damage: damage,
		Cues:   cues,
		AI:     system.NewAISystem(log),
		Stats:  system.NewStatsSystem(),
		log:    log,
	}
	s.Scheduler = ecs.NewScheduler(
		system.NewPhysicsSystem(),
		system.NewMatchSystem(log),
		system.NewSpawnerSystem(spawn, log),
		system.NewTargetMotionSystem(),
		system.NewHealthSystem(),
		system.NewRespawnSystem(),
		system.NewPlayerControllerSystem(arena.Grid, log),
		s.AI,
		system.NewNavSystem(),
		system.NewAIWeaponSystem(),
		system.NewWeaponSystem(),
		projectiles,
		system.NewTTLSystem(),
		s.Stats,
	)

	log.Info("sim: arena loaded",
		zap.String("arena", spec.Name),
		zap.Int("enemies", len(arena.Enemies)),
		zap.Int("obstacles", len(arena.Obstacles)))
	return s, nil
}

// Step advances the world by dt seconds.
func (s *Sim) Step(dt float64) {
	s.Scheduler.Step(s.World, dt)
}

// Input is the player's intent for the next tick, or nil when there is no player.
func (s *Sim) Input() *component.Input {
	in, _ := ecs.Get(s.World, s.Arena.Player, component.InputComponent.Kind())
	return in
}

// Start begins a match on the next tick.
func (s *Sim) Start() {
	if in := s.Input(); in != nil {
		in.Start = true
		return
	}
	s.Arena.Match.Start()
}

func (s *Sim) Match() *core.Match { return s.Arena.Match }

// HandleChange applies a hot-reload event. It must run on the tick goroutine.
func (s *Sim) HandleChange(c prefabs.Change) {
	switch c.Kind {
	case prefabs.ChangeScript:
		s.AI.InvalidateScripts()
		s.log.Info("sim: scripts reloaded", zap.String("file", c.Name))
	case prefabs.ChangeSpec:
		n, err := entity.ReloadTuning(s.World, c.Name)
		if err != nil {
			s.log.Warn("sim: reload failed", zap.String("file", c.Name), zap.Error(err))
			return
		}
		s.log.Info("sim: tuning reloaded", zap.String("file", c.Name), zap.Int("entities", n))
	}
}

// DrainChanges applies every pending watcher event without blocking.
func (s *Sim) DrainChanges(w *prefabs.Watcher) {
	if w == nil {
		return
	}
	for {
		select {
		case c, ok := <-w.Events:
			if !ok {
				return
			}
			s.HandleChange(c)
		case err, ok := <-w.Errors:
			if ok {
				s.log.Warn("sim: watcher error", zap.Error(err))
			}
		default:
			return
		}
	}
}

// Summary is the end-of-match report.
type Summary struct {
	MatchID uuid.UUID
	State   core.MatchState
	Score   int
	Ticks   uint64
	Time    float64
	component.MatchStats
}

func (s *Sim) Summary() Summary {
	out := Summary{
		MatchID: s.Arena.Match.ID(),
		State:   s.Arena.Match.State(),
		Score:   s.Arena.Match.Score(),
		Ticks:   s.World.Tick(),
		Time:    s.World.Time(),
	}
	if _, stats, ok := ecs.First(s.World, component.MatchStatsComponent.Kind()); ok {
		out.MatchStats = *stats
	}
	return out
}
