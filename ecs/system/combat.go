package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// CombatEventType is the world event type carrying a core.CombatEvent.
const CombatEventType = "combat"

// DamageRouter resolves hits on collider entities through the damage chain.
// Every combat event is queued on the world; destroyed targets score for the
// match and are removed at once.
type DamageRouter struct {
	world    *ecs.World
	resolver *core.DamageResolver
	cues     core.CueSink
	log      *zap.Logger
}

func NewDamageRouter(w *ecs.World, cues core.CueSink, log *zap.Logger) *DamageRouter {
	if log == nil {
		log = zap.NewNop()
	}
	r := &DamageRouter{world: w, cues: cues, log: log}
	r.resolver = core.NewDamageResolver(core.SurfaceLookupFunc(r.surface))
	r.resolver.Emitter.Subscribe(r.onCombatEvent)
	return r
}

// Emitter exposes the combat event stream for extra subscribers.
func (r *DamageRouter) Emitter() *core.CombatEventEmitter {
	return r.resolver.Emitter
}

// ApplyDamage implements core.DamageApplier.
func (r *DamageRouter) ApplyDamage(surface core.SurfaceID, point mgl64.Vec3, amount float64, attacker core.Team) core.DamageOutcome {
	return r.resolver.ApplyDamage(surface, point, amount, attacker)
}

func (r *DamageRouter) surface(id core.SurfaceID) (core.Surface, bool) {
	e := ecs.Entity(id)
	if !ecs.IsAlive(r.world, e) {
		return core.Surface{}, false
	}
	var s core.Surface
	s.Hitbox, _ = ecs.Get(r.world, e, component.HitboxComponent.Kind())
	s.Health, _ = ecs.Get(r.world, e, component.HealthComponent.Kind())
	s.Target, _ = ecs.Get(r.world, e, component.TargetComponent.Kind())
	return s, true
}

func (r *DamageRouter) onCombatEvent(evt core.CombatEvent) {
	r.world.Emit(CombatEventType, evt)

	switch evt.Type {
	case core.EventDamageApplied:
		r.log.Debug("combat: damage applied",
			zap.Stringer("surface", ecs.Entity(evt.Surface)),
			zap.String("handler", evt.Handler.String()),
			zap.String("region", evt.Region.String()),
			zap.Float64("damage", evt.Damage),
		)
		r.cue(core.CueHit, evt.Point)
	case core.EventDeath:
		r.log.Info("combat: death",
			zap.Stringer("surface", ecs.Entity(evt.Surface)),
			zap.String("attacker", string(evt.Attacker)),
		)
		r.cue(core.CueDeath, evt.Point)
	case core.EventTargetDestroyed:
		r.cue(core.CueTargetDestroyed, evt.Point)
		if _, m, ok := ecs.First(r.world, component.MatchComponent.Kind()); ok {
			m.AddScore(evt.Points)
		}
		DestroyWithColliders(r.world, ecs.Entity(evt.Surface))
	}
}

func (r *DamageRouter) cue(id core.CueID, at mgl64.Vec3) {
	if r.cues != nil {
		r.cues.PlayCue(id, at)
	}
}
