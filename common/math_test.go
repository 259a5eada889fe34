package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestLookRotation(t *testing.T) {
	cases := []mgl64.Vec3{
		{0, 0, 1},
		{1, 0, 0},
		{-3, 0, -3},
		{2, 1, 5},
		{0, -2, 1},
	}
	for _, dir := range cases {
		got := LookRotation(dir).Rotate(WorldForward)
		assert.InDelta(t, 0.0, got.Sub(dir.Normalize()).Len(), 1e-9, "dir %v got %v", dir, got)
	}
	assert.Equal(t, mgl64.QuatIdent(), LookRotation(mgl64.Vec3{}))
}

func TestYaw(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Yaw(YawRotation(math.Pi/2)), 1e-9)
	assert.InDelta(t, 0.0, Yaw(mgl64.QuatIdent()), 1e-9)
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 90.0, AngleBetween(WorldForward, WorldRight), 1e-9)
	assert.InDelta(t, 180.0, AngleBetween(WorldForward, WorldForward.Mul(-2)), 1e-9)
	assert.Equal(t, 0.0, AngleBetween(mgl64.Vec3{}, WorldUp))
}

func TestSlerpTakesShortArc(t *testing.T) {
	from := mgl64.QuatIdent()
	to := YawRotation(math.Pi / 2).Scale(-1)

	mid := Slerp(from, to, 0.5).Rotate(WorldForward)

	assert.InDelta(t, 45.0, AngleBetween(WorldForward, mid), 1e-6)
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestProperty_RandomInCircle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		radius := rapid.Float64Range(0, 50).Draw(rt, "radius")
		seed := rapid.Uint64Range(1, math.MaxUint32).Draw(rt, "seed")
		center := mgl64.Vec3{
			rapid.Float64Range(-100, 100).Draw(rt, "x"),
			rapid.Float64Range(-5, 5).Draw(rt, "y"),
			rapid.Float64Range(-100, 100).Draw(rt, "z"),
		}

		p := RandomInCircle(center, radius, NewRand(seed))

		if PlanarDistance(center, p) > radius+1e-9 || p.Y() != center.Y() {
			rt.Fatalf("point %v escaped circle of %v around %v", p, radius, center)
		}
	})
}
