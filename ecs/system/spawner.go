package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// SpawnFunc creates a target entity at a world position.
type SpawnFunc func(w *ecs.World, at mgl64.Vec3) (ecs.Entity, error)

// SpawnerSystem asks the arena's TargetSpawner for spawn positions while the
// match is active and builds targets through Spawn.
type SpawnerSystem struct {
	Spawn SpawnFunc
	log   *zap.Logger
}

func NewSpawnerSystem(spawn SpawnFunc, log *zap.Logger) *SpawnerSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &SpawnerSystem{Spawn: spawn, log: log}
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	if w == nil || s.Spawn == nil || !MatchActive(w) {
		return
	}
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, sp *core.TargetSpawner) {
		at, ok := sp.Tick(w.Delta(), ecs.Count(w, component.TargetTagComponent.Kind()))
		if !ok {
			return
		}
		e, err := s.Spawn(w, at)
		if err != nil {
			s.log.Warn("spawner: spawn target failed", zap.Error(err))
			return
		}
		s.log.Debug("spawner: target spawned",
			zap.Stringer("entity", e),
			zap.Float64("x", at.X()),
			zap.Float64("z", at.Z()),
		)
	})
}
