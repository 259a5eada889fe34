package component

import "github.com/go-gl/mathgl/mgl64"

// ProjectileLaunch carries everything needed to spawn a projectile.
type ProjectileLaunch struct {
	Origin   mgl64.Vec3
	Velocity mgl64.Vec3
	Damage   float64
	Team     Team
	Lifetime float64
	Mask     LayerMask
	Owner    uint64
}

// Projectile is a simulated bullet that dies on its first collision or when its lifetime runs out.
type Projectile struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Damage    float64
	Team      Team
	Remaining float64
	Mask      LayerMask
	Owner     uint64

	done bool
}

// NewProjectile creates a projectile from l, defaulting to a 5 s lifetime.
func NewProjectile(l ProjectileLaunch) *Projectile {
	if l.Lifetime <= 0 {
		l.Lifetime = 5
	}
	return &Projectile{
		Position:  l.Origin,
		Velocity:  l.Velocity,
		Damage:    l.Damage,
		Team:      l.Team,
		Remaining: l.Lifetime,
		Mask:      l.Mask,
		Owner:     l.Owner,
	}
}

// ProjectileStep reports what happened during one Step.
type ProjectileStep struct {
	Hit     bool
	RayHit  RayHit
	Outcome DamageOutcome
	Expired bool
}

func (p *Projectile) Done() bool {
	return p == nil || p.done
}

// Step sweeps the path travelled during dt. Damage is resolved at most once.
func (p *Projectile) Step(dt float64, rc Raycaster, dmg DamageApplier) ProjectileStep {
	if p.Done() {
		return ProjectileStep{}
	}

	travel := p.Velocity.Mul(dt)
	if dist := travel.Len(); dist > 0 && rc != nil {
		hit, ok := rc.Raycast(Ray{
			Origin:      p.Position,
			Direction:   travel.Mul(1 / dist),
			MaxDistance: dist,
			Mask:        p.Mask,
			Ignore:      p.Owner,
		})
		if ok {
			p.Position = hit.Point
			p.done = true
			step := ProjectileStep{Hit: true, RayHit: hit}
			if dmg != nil {
				step.Outcome = dmg.ApplyDamage(hit.Surface, hit.Point, p.Damage, p.Team)
			}
			return step
		}
	}

	p.Position = p.Position.Add(travel)
	p.Remaining -= dt
	if p.Remaining <= 0 {
		p.done = true
		return ProjectileStep{Expired: true}
	}
	return ProjectileStep{}
}
