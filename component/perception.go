package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vrarena/common"
)

// Perception holds an agent's detection parameters.
type Perception struct {
	DetectionRange float64
	FieldOfView    float64 // degrees, full cone
	EyeHeight      float64
	ObstacleMask   LayerMask
}

func DefaultPerception() Perception {
	return Perception{
		DetectionRange: 15,
		FieldOfView:    90,
		EyeHeight:      1,
		ObstacleMask:   LayerObstacle,
	}
}

// Eye returns the eye position of an agent at self.
func (p Perception) Eye(self Pose) mgl64.Vec3 {
	return self.Position.Add(common.WorldUp.Mul(p.EyeHeight))
}

// CanSee runs the range, field-of-view and line-of-sight checks in that order.
// The line-of-sight ray is only cast when an obstacle mask is configured.
func (p Perception) CanSee(self Pose, target mgl64.Vec3, rc Raycaster, ignore uint64) bool {
	toTarget := target.Sub(self.Position)
	dist := toTarget.Len()
	if dist > p.DetectionRange {
		return false
	}
	if dist > 0 && common.AngleBetween(self.Forward(), toTarget) > p.FieldOfView/2 {
		return false
	}
	if p.ObstacleMask == LayerNone || rc == nil {
		return true
	}

	eye := p.Eye(self)
	sight := target.Sub(eye)
	sightDist := sight.Len()
	if sightDist == 0 {
		return true
	}
	_, blocked := rc.Raycast(Ray{
		Origin:      eye,
		Direction:   sight.Mul(1 / sightDist),
		MaxDistance: sightDist,
		Mask:        p.ObstacleMask,
		Ignore:      ignore,
	})
	return !blocked
}
