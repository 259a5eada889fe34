package component

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Team identifies friendly-fire groups. The empty team never matches another.
type Team string

const (
	TeamNone   Team = ""
	TeamPlayer Team = "Player"
	TeamEnemy  Team = "Enemy"
)

// ParseTeam maps a case-insensitive team name. Empty means no team.
func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TeamNone, nil
	case "player":
		return TeamPlayer, nil
	case "enemy":
		return TeamEnemy, nil
	default:
		return TeamNone, fmt.Errorf("component: unknown team %q", s)
	}
}

// Allied reports whether t and other belong to the same non-empty team.
func (t Team) Allied(other Team) bool {
	return t != TeamNone && t == other
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit             CombatEventType = "hit"
	EventDamageApplied   CombatEventType = "damage_applied"
	EventDamageRejected  CombatEventType = "damage_rejected"
	EventDeath           CombatEventType = "death"
	EventTargetDestroyed CombatEventType = "target_destroyed"
)

// CombatEvent is emitted during damage resolution.
type CombatEvent struct {
	Type     CombatEventType
	Attacker Team
	Surface  SurfaceID
	Handler  DamageHandler
	Region   Region
	Damage   float64
	Points   int
	Point    mgl64.Vec3
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to its handlers in order.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Subscribe appends a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}
