package system

import (
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// ShotEventType is the world event type carrying a ShotEvent.
const ShotEventType = "shot"

// ShotEvent records a shot fired by a player-controlled weapon.
type ShotEvent struct {
	Shooter ecs.Entity
	Result  core.ShotResult
}

// StatsSystem drains the world event queue into the MatchStats singleton.
// Extra consumers can observe every drained event through OnEvent.
type StatsSystem struct {
	OnEvent func(evt ecs.Event)
}

func NewStatsSystem() *StatsSystem { return &StatsSystem{} }

func (s *StatsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}

	_, stats, ok := ecs.First(w, component.MatchStatsComponent.Kind())
	for _, evt := range events {
		if s.OnEvent != nil {
			s.OnEvent(evt)
		}
		if !ok {
			continue
		}
		switch data := evt.Data.(type) {
		case ShotEvent:
			stats.ShotsFired++
		case core.CombatEvent:
			recordCombat(stats, data)
		}
	}
}

func recordCombat(stats *component.MatchStats, evt core.CombatEvent) {
	switch evt.Type {
	case core.EventDamageApplied:
		if evt.Attacker != core.TeamPlayer {
			return
		}
		stats.Hits++
		if evt.Handler == core.HandledHitbox && evt.Region == core.RegionHead {
			stats.Headshots++
		}
	case core.EventTargetDestroyed:
		stats.TargetsDestroyed++
	case core.EventDeath:
		switch evt.Attacker {
		case core.TeamPlayer:
			stats.Kills++
		case core.TeamEnemy:
			stats.PlayerDeaths++
		}
	}
}
