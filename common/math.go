package common

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// World axes. Y is up, Z is forward and X is right.
var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldRight   = mgl64.Vec3{1, 0, 0}
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(t float64) float64 {
	return mgl64.Clamp(t, 0, 1)
}

// LookRotation returns the roll-free rotation whose forward axis points along dir.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	if dir.Len() < epsilon {
		return mgl64.QuatIdent()
	}
	d := dir.Normalize()
	yaw := math.Atan2(d.X(), d.Z())
	pitch := -math.Asin(mgl64.Clamp(d.Y(), -1, 1))
	return mgl64.QuatRotate(yaw, WorldUp).Mul(mgl64.QuatRotate(pitch, WorldRight)).Normalize()
}

// YawRotation returns a rotation of yaw radians around the up axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, WorldUp)
}

// Yaw extracts the heading of q in radians.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(WorldForward)
	return math.Atan2(f.X(), f.Z())
}

// AngleBetween returns the angle between a and b in degrees.
func AngleBetween(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < epsilon || lb < epsilon {
		return 0
	}
	c := mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(c))
}

// Spread perturbs q by independent pitch and yaw offsets drawn from [-maxDeg, maxDeg].
func Spread(q mgl64.Quat, maxDeg float64, rng *rand.Rand) mgl64.Quat {
	if maxDeg <= 0 || rng == nil {
		return q
	}
	pitch := mgl64.DegToRad((rng.Float64()*2 - 1) * maxDeg)
	yaw := mgl64.DegToRad((rng.Float64()*2 - 1) * maxDeg)
	return q.Mul(mgl64.QuatRotate(yaw, WorldUp)).Mul(mgl64.QuatRotate(pitch, WorldRight)).Normalize()
}

// Slerp interpolates along the shortest arc between from and to.
func Slerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, Clamp01(t)).Normalize()
}

// Flat projects v onto the ground plane.
func Flat(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

func PlanarDistance(a, b mgl64.Vec3) float64 {
	return Flat(b.Sub(a)).Len()
}

// RandomInCircle returns a point uniformly distributed within radius of center on the ground plane.
func RandomInCircle(center mgl64.Vec3, radius float64, rng *rand.Rand) mgl64.Vec3 {
	if radius <= 0 || rng == nil {
		return center
	}
	r := radius * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return center.Add(mgl64.Vec3{r * math.Cos(theta), 0, r * math.Sin(theta)})
}

// NewRand returns a deterministic generator for seed, or a randomly seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
