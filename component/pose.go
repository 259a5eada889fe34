package component

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/vrarena/common"
)

// Pose is a world-space position and orientation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose creates a pose at position facing yaw radians from +Z.
func NewPose(position mgl64.Vec3, yaw float64) Pose {
	return Pose{Position: position, Rotation: common.YawRotation(yaw)}
}

func (p Pose) rotation() mgl64.Quat {
	if p.Rotation.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return p.Rotation
}

func (p Pose) Forward() mgl64.Vec3 { return p.rotation().Rotate(common.WorldForward) }
func (p Pose) Right() mgl64.Vec3   { return p.rotation().Rotate(common.WorldRight) }
func (p Pose) Up() mgl64.Vec3      { return p.rotation().Rotate(common.WorldUp) }

// Axis returns the world direction of d relative to the pose.
func (p Pose) Axis(d ShootDirection) mgl64.Vec3 {
	switch d {
	case ShootBackward:
		return p.Forward().Mul(-1)
	case ShootRight:
		return p.Right()
	case ShootLeft:
		return p.Right().Mul(-1)
	case ShootUp:
		return p.Up()
	case ShootDown:
		return p.Up().Mul(-1)
	default:
		return p.Forward()
	}
}

// Transform maps a pose-local offset into world space.
func (p Pose) Transform(local mgl64.Vec3) mgl64.Vec3 {
	return p.Position.Add(p.rotation().Rotate(local))
}

// ShootDirection selects the pose axis a weapon fires along.
type ShootDirection int

const (
	ShootForward ShootDirection = iota
	ShootBackward
	ShootRight
	ShootLeft
	ShootUp
	ShootDown
)

func (d ShootDirection) String() string {
	switch d {
	case ShootBackward:
		return "backward"
	case ShootRight:
		return "right"
	case ShootLeft:
		return "left"
	case ShootUp:
		return "up"
	case ShootDown:
		return "down"
	default:
		return "forward"
	}
}

func ParseShootDirection(s string) (ShootDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return ShootForward, nil
	case "backward", "back":
		return ShootBackward, nil
	case "right":
		return ShootRight, nil
	case "left":
		return ShootLeft, nil
	case "up":
		return ShootUp, nil
	case "down":
		return ShootDown, nil
	default:
		return ShootForward, fmt.Errorf("component: unknown shoot direction %q", s)
	}
}
