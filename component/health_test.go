package component_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/milk9111/vrarena/component"
)

func TestHealthTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(h *component.Health)
		amount   float64
		attacker component.Team
		applied  bool
		want     float64
	}{
		{name: "enemy_hit", amount: 30, attacker: component.TeamEnemy, applied: true, want: 70},
		{name: "same_team_ignored", amount: 30, attacker: component.TeamPlayer, want: 100},
		{name: "no_team_attacker", amount: 30, attacker: component.TeamNone, applied: true, want: 70},
		{name: "clamped_at_zero", amount: 500, attacker: component.TeamEnemy, applied: true, want: 0},
		{
			name:     "timed_invulnerable",
			setup:    func(h *component.Health) { h.SetInvulnerable(1) },
			amount:   30,
			attacker: component.TeamEnemy,
			want:     100,
		},
		{
			name:     "permanent_invulnerable",
			setup:    func(h *component.Health) { h.SetPermanentInvulnerable(true) },
			amount:   30,
			attacker: component.TeamEnemy,
			want:     100,
		},
		{
			name:     "dead",
			setup:    func(h *component.Health) { h.InstantKill() },
			amount:   30,
			attacker: component.TeamEnemy,
			want:     0,
		},
		{name: "negative_amount", amount: -10, attacker: component.TeamEnemy, want: 100},
		{name: "nan_amount", amount: math.NaN(), attacker: component.TeamEnemy, want: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := component.NewHealth(100, component.TeamPlayer)
			if tc.setup != nil {
				tc.setup(h)
			}
			assert.Equal(t, tc.applied, h.TakeDamage(tc.amount, tc.attacker))
			assert.Equal(t, tc.want, h.CurrentHealth())
		})
	}
}

func TestHealthDeathFiresOnce(t *testing.T) {
	h := component.NewHealth(50, component.TeamEnemy)
	deaths := 0
	var taken [][2]float64
	h.Subscribe(component.HealthListener{
		OnDeath:       func() { deaths++ },
		OnDamageTaken: func(amount, remaining float64) { taken = append(taken, [2]float64{amount, remaining}) },
	})

	require.True(t, h.TakeDamage(50, component.TeamPlayer))
	assert.False(t, h.IsAlive())
	assert.False(t, h.TakeDamage(10, component.TeamPlayer))
	h.InstantKill()

	assert.Equal(t, 1, deaths)
	assert.Equal(t, [][2]float64{{50, 0}}, taken)
}

func TestHealthNotificationOrder(t *testing.T) {
	h := component.NewHealth(100, component.TeamEnemy)
	var got []string
	h.Subscribe(component.HealthListener{
		OnHealthChanged: func(float64) { got = append(got, "changed") },
		OnDamageTaken:   func(float64, float64) { got = append(got, "damage") },
		OnDeath:         func() { got = append(got, "death") },
	})

	h.TakeDamage(100, component.TeamPlayer)

	assert.Equal(t, []string{"changed", "damage", "death"}, got)
}

func TestHealthHealAndRevive(t *testing.T) {
	h := component.NewHealth(100, component.TeamPlayer)
	h.TakeDamage(60, component.TeamEnemy)

	assert.True(t, h.Heal(500))
	assert.Equal(t, 100.0, h.CurrentHealth())

	h.InstantKill()
	assert.False(t, h.Heal(10), "dead actors cannot heal")

	revived := 0
	var changes []float64
	h.Subscribe(component.HealthListener{
		OnRevive:        func() { revived++ },
		OnHealthChanged: func(cur float64) { changes = append(changes, cur) },
	})

	h.Revive(40)
	assert.True(t, h.IsAlive())
	assert.Equal(t, 40.0, h.CurrentHealth())

	h.InstantKill()
	h.Revive(0)
	assert.Equal(t, 100.0, h.CurrentHealth())
	assert.Equal(t, 2, revived)
	assert.Equal(t, []float64{40, 0, 100}, changes)
}

func TestHealthInstantKillIgnoresInvulnerability(t *testing.T) {
	h := component.NewHealth(100, component.TeamPlayer)
	h.SetPermanentInvulnerable(true)

	h.InstantKill()

	assert.False(t, h.IsAlive())
	assert.Equal(t, 0.0, h.CurrentHealth())
}

func TestHealthInvulnerabilityCountdown(t *testing.T) {
	h := component.NewHealth(100, component.TeamPlayer)
	h.SetInvulnerable(1)
	h.SetInvulnerable(0.5)

	h.Tick(0.6)
	assert.True(t, h.IsInvulnerable(), "shorter request must not cut the window")

	h.Tick(0.5)
	assert.False(t, h.IsInvulnerable())
	assert.True(t, h.TakeDamage(10, component.TeamEnemy))
}

func TestHealthRejectsNaN(t *testing.T) {
	h := component.NewHealth(100, component.TeamPlayer)
	require.True(t, h.TakeDamage(40, component.TeamEnemy))

	assert.False(t, h.Heal(math.NaN()))
	h.SetInvulnerable(math.NaN())
	assert.False(t, h.IsInvulnerable())
	assert.Equal(t, 60.0, h.CurrentHealth())

	h.InstantKill()
	h.Revive(math.NaN())
	assert.Equal(t, 100.0, h.CurrentHealth(), "an unusable amount revives at full health")
}

func TestHealthUnsubscribe(t *testing.T) {
	h := component.NewHealth(100, component.TeamPlayer)
	calls := 0
	unsubscribe := h.Subscribe(component.HealthListener{OnHealthChanged: func(float64) { calls++ }})

	h.Heal(1)
	h.TakeDamage(10, component.TeamEnemy)
	unsubscribe()
	h.TakeDamage(10, component.TeamEnemy)

	assert.Equal(t, 2, calls)
}

func TestHealthResetHealth(t *testing.T) {
	h := component.NewHealth(80, component.TeamEnemy)
	h.SetInvulnerable(3)
	h.InstantKill()

	h.ResetHealth()

	assert.True(t, h.IsAlive())
	assert.False(t, h.IsInvulnerable())
	assert.Equal(t, 1.0, h.Fraction())
}

func TestProperty_HealthStaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		max := rapid.Float64Range(1, 1000).Draw(rt, "max")
		h := component.NewHealth(max, component.TeamEnemy)
		ops := rapid.SliceOfN(rapid.IntRange(0, 4), 1, 50).Draw(rt, "ops")
		for _, op := range ops {
			amount := rapid.Float64Range(0, 2*max).Draw(rt, "amount")
			switch op {
			case 0:
				h.TakeDamage(amount, component.TeamPlayer)
			case 1:
				h.Heal(amount)
			case 2:
				h.Revive(amount)
			case 3:
				h.Tick(amount / max)
			case 4:
				h.InstantKill()
			}
			if h.CurrentHealth() < 0 || h.CurrentHealth() > max {
				rt.Fatalf("health %v outside [0, %v]", h.CurrentHealth(), max)
			}
			if h.IsAlive() != (h.CurrentHealth() > 0) {
				rt.Fatalf("alive=%v with health %v", h.IsAlive(), h.CurrentHealth())
			}
		}
	})
}

func TestProperty_SameTeamNeverChangesHealth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		team := component.Team(rapid.SampledFrom([]string{"Player", "Enemy", "Blue"}).Draw(rt, "team"))
		h := component.NewHealth(100, team)
		amount := rapid.Float64Range(0, 1e6).Draw(rt, "amount")

		h.TakeDamage(amount, team)

		if h.CurrentHealth() != 100 {
			rt.Fatalf("friendly fire changed health to %v", h.CurrentHealth())
		}
	})
}
