package component

// HealthListener receives health notifications. Nil callbacks are skipped.
type HealthListener struct {
	OnHealthChanged func(current float64)
	OnDamageTaken   func(amount, remaining float64)
	OnDeath         func()
	OnRevive        func()
}

type healthSubscription struct {
	id       int
	listener HealthListener
}

// Health tracks hit points, invulnerability and team affiliation of an actor.
type Health struct {
	max       float64
	current   float64
	team      Team
	dead      bool
	invulnFor float64
	permanent bool

	listeners []healthSubscription
	nextID    int
}

// NewHealth creates a Health at full hit points.
func NewHealth(max float64, team Team) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{max: max, current: max, team: team}
}

// Subscribe registers l and returns a function that removes it again.
func (h *Health) Subscribe(l HealthListener) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, healthSubscription{id: id, listener: l})
	return func() {
		for i, s := range h.listeners {
			if s.id == id {
				h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// TakeDamage subtracts amount unless the actor is dead, invulnerable or allied with attacker.
// It reports whether the damage was applied.
func (h *Health) TakeDamage(amount float64, attacker Team) bool {
	if h == nil || h.dead || h.IsInvulnerable() || h.team.Allied(attacker) || !(amount >= 0) {
		return false
	}

	h.current -= amount
	if h.current < 0 {
		h.current = 0
	}

	h.notifyChanged()
	remaining := h.current
	h.each(func(l HealthListener) {
		if l.OnDamageTaken != nil {
			l.OnDamageTaken(amount, remaining)
		}
	})

	if h.current <= 0 {
		h.die()
	}
	return true
}

// Heal adds amount up to the maximum. Dead actors cannot be healed.
func (h *Health) Heal(amount float64) bool {
	if h == nil || h.dead || !(amount > 0) {
		return false
	}
	h.current += amount
	if h.current > h.max {
		h.current = h.max
	}
	h.notifyChanged()
	return true
}

// SetInvulnerable starts the invulnerability countdown, or extends it if already longer.
func (h *Health) SetInvulnerable(duration float64) {
	if h == nil || !(duration > h.invulnFor) {
		return
	}
	h.invulnFor = duration
}

// SetPermanentInvulnerable toggles damage immunity independent of the countdown.
func (h *Health) SetPermanentInvulnerable(on bool) {
	if h == nil {
		return
	}
	h.permanent = on
}

// Revive restores the actor with amount hit points, or full health when amount <= 0.
func (h *Health) Revive(amount float64) {
	if h == nil {
		return
	}
	if !(amount > 0) || amount > h.max {
		amount = h.max
	}
	h.current = amount
	h.dead = false
	h.each(func(l HealthListener) {
		if l.OnRevive != nil {
			l.OnRevive()
		}
	})
	h.notifyChanged()
}

// InstantKill drops health to zero regardless of invulnerability.
func (h *Health) InstantKill() {
	if h == nil || h.dead {
		return
	}
	h.current = 0
	h.notifyChanged()
	h.die()
}

// ResetHealth restores full health and clears death and the invulnerability countdown.
func (h *Health) ResetHealth() {
	if h == nil {
		return
	}
	h.current = h.max
	h.dead = false
	h.invulnFor = 0
	h.notifyChanged()
}

// Tick advances the invulnerability countdown.
func (h *Health) Tick(dt float64) {
	if h == nil || h.invulnFor <= 0 {
		return
	}
	h.invulnFor -= dt
	if h.invulnFor < 0 {
		h.invulnFor = 0
	}
}

func (h *Health) CurrentHealth() float64 {
	if h == nil {
		return 0
	}
	return h.current
}

func (h *Health) MaxHealth() float64 {
	if h == nil {
		return 0
	}
	return h.max
}

// Fraction returns current/max in [0, 1].
func (h *Health) Fraction() float64 {
	if h == nil || h.max <= 0 {
		return 0
	}
	return h.current / h.max
}

func (h *Health) IsAlive() bool {
	return h != nil && !h.dead && h.current > 0
}

func (h *Health) IsInvulnerable() bool {
	return h != nil && (h.permanent || h.invulnFor > 0)
}

func (h *Health) Team() Team {
	if h == nil {
		return TeamNone
	}
	return h.team
}

func (h *Health) die() {
	if h.dead {
		return
	}
	h.dead = true
	h.each(func(l HealthListener) {
		if l.OnDeath != nil {
			l.OnDeath()
		}
	})
}

func (h *Health) notifyChanged() {
	current := h.current
	h.each(func(l HealthListener) {
		if l.OnHealthChanged != nil {
			l.OnHealthChanged(current)
		}
	})
}

// each iterates a snapshot so listeners may unsubscribe while being notified.
func (h *Health) each(fn func(l HealthListener)) {
	if len(h.listeners) == 0 {
		return
	}
	snapshot := append([]healthSubscription(nil), h.listeners...)
	for _, s := range snapshot {
		fn(s.listener)
	}
}
