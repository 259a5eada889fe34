package component

import "github.com/go-gl/mathgl/mgl64"

// DamageHandler names the link of the resolution chain that handled a hit.
type DamageHandler int

const (
	HandledNone DamageHandler = iota
	HandledHitbox
	HandledHealth
	HandledTarget
)

func (d DamageHandler) String() string {
	switch d {
	case HandledHitbox:
		return "hitbox"
	case HandledHealth:
		return "health"
	case HandledTarget:
		return "target"
	default:
		return "none"
	}
}

// Surface is everything damageable found on a struck collider.
type Surface struct {
	Hitbox *Hitbox
	Health *Health
	Target *Target
}

// DamageOutcome describes the result of one resolution.
type DamageOutcome struct {
	Handler DamageHandler
	Applied bool
	Amount  float64
	Killed  bool
	Region  Region
	Points  int
}

// ApplyDamage runs the resolution chain hitbox, then health, then target.
// Only the first link present on s is invoked.
func ApplyDamage(s Surface, base float64, attacker Team) DamageOutcome {
	switch {
	case s.Hitbox != nil:
		wasAlive := s.Hitbox.Owner.IsAlive()
		amount, ok := s.Hitbox.TakeDamage(base, attacker)
		return DamageOutcome{
			Handler: HandledHitbox,
			Applied: ok,
			Amount:  amount,
			Killed:  ok && wasAlive && !s.Hitbox.Owner.IsAlive(),
			Region:  s.Hitbox.Region,
		}
	case s.Health != nil:
		wasAlive := s.Health.IsAlive()
		ok := s.Health.TakeDamage(base, attacker)
		return DamageOutcome{
			Handler: HandledHealth,
			Applied: ok,
			Amount:  base,
			Killed:  ok && wasAlive && !s.Health.IsAlive(),
			Region:  RegionBody,
		}
	case s.Target != nil:
		if s.Target.Destroyed() {
			return DamageOutcome{Handler: HandledTarget}
		}
		killed := s.Target.Hit()
		out := DamageOutcome{Handler: HandledTarget, Applied: true, Amount: 1, Killed: killed}
		if killed {
			out.Points = s.Target.Points
		}
		return out
	default:
		return DamageOutcome{}
	}
}

// SurfaceLookup finds the damageable parts of a surface.
type SurfaceLookup interface {
	Surface(id SurfaceID) (Surface, bool)
}

// SurfaceLookupFunc adapts a function to SurfaceLookup.
type SurfaceLookupFunc func(id SurfaceID) (Surface, bool)

func (f SurfaceLookupFunc) Surface(id SurfaceID) (Surface, bool) {
	return f(id)
}

// DamageResolver resolves surfaces and emits combat events around ApplyDamage.
type DamageResolver struct {
	Surfaces SurfaceLookup
	Emitter  *CombatEventEmitter
}

// NewDamageResolver creates a resolver over lookup.
func NewDamageResolver(lookup SurfaceLookup) *DamageResolver {
	return &DamageResolver{Surfaces: lookup, Emitter: &CombatEventEmitter{}}
}

// ApplyDamage implements DamageApplier. Surfaces with nothing damageable absorb the hit.
func (r *DamageResolver) ApplyDamage(surface SurfaceID, point mgl64.Vec3, amount float64, attacker Team) DamageOutcome {
	if r == nil || r.Surfaces == nil || surface == 0 {
		return DamageOutcome{}
	}
	s, ok := r.Surfaces.Surface(surface)
	if !ok {
		return DamageOutcome{}
	}

	out := ApplyDamage(s, amount, attacker)
	if out.Handler == HandledNone {
		return out
	}

	evt := CombatEvent{
		Type:     EventHit,
		Attacker: attacker,
		Surface:  surface,
		Handler:  out.Handler,
		Region:   out.Region,
		Damage:   out.Amount,
		Point:    point,
	}
	r.Emitter.Emit(evt)

	if !out.Applied {
		evt.Type = EventDamageRejected
		r.Emitter.Emit(evt)
		return out
	}

	evt.Type = EventDamageApplied
	r.Emitter.Emit(evt)
	if out.Killed {
		if out.Handler == HandledTarget {
			evt.Type = EventTargetDestroyed
			evt.Points = out.Points
		} else {
			evt.Type = EventDeath
		}
		r.Emitter.Emit(evt)
	}
	return out
}
