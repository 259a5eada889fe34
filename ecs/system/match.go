package system

import (
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// MatchSystem drives the match clock and reacts to match state changes:
// a new match clears the field, resets stats and the spawner and revives
// players; a finished match clears all targets.
type MatchSystem struct {
	log  *zap.Logger
	last core.MatchState
}

func NewMatchSystem(log *zap.Logger) *MatchSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MatchSystem{log: log}
}

func (s *MatchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, m, ok := ecs.First(w, component.MatchComponent.Kind())
	if !ok {
		return
	}

	s.observe(w, m)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		if !in.Start {
			return
		}
		in.Start = false
		if !m.Active() {
			m.Start()
		}
	})

	m.Tick(w.Delta())
	s.observe(w, m)
}

func (s *MatchSystem) observe(w *ecs.World, m *core.Match) {
	state := m.State()
	if state == s.last {
		return
	}
	s.last = state

	switch state {
	case core.MatchPlaying:
		cleared := ClearTargets(w)
		if _, stats, ok := ecs.First(w, component.MatchStatsComponent.Kind()); ok {
			*stats = component.MatchStats{}
		}
		if _, sp, ok := ecs.First(w, component.SpawnerComponent.Kind()); ok {
			sp.Reset()
		}
		ecs.ForEach(w, component.RespawnerComponent.Kind(), func(_ ecs.Entity, r *core.Respawner) {
			if r.Pending() {
				r.Respawn()
			}
		})
		s.log.Debug("match: field reset", zap.Stringer("match", m.ID()), zap.Int("targets_cleared", cleared))
	case core.MatchGameOver:
		cleared := ClearTargets(w)
		s.log.Debug("match: targets cleared", zap.Stringer("match", m.ID()), zap.Int("targets_cleared", cleared))
	}
}

// ClearTargets destroys every target entity and returns how many were removed.
func ClearTargets(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.TargetTagComponent.Kind(), func(e ecs.Entity, _ *component.TargetTag) {
		DestroyWithColliders(w, e)
		n++
	})
	return n
}
