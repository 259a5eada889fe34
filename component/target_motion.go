package component

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vrarena/common"
)

// MotionMode selects how a target moves.
type MotionMode int

const (
	MotionNone MotionMode = iota
	MotionSinusoid
	MotionRandom
)

func ParseMotionMode(s string) (MotionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MotionNone, nil
	case "sinusoid", "sine":
		return MotionSinusoid, nil
	case "random":
		return MotionRandom, nil
	default:
		return MotionNone, fmt.Errorf("component: unknown motion mode %q", s)
	}
}

type MotionConfig struct {
	Mode      MotionMode
	Amplitude float64
	Frequency float64
	Speed     float64
	Range     float64
}

// TargetMotion moves a target around its anchor.
type TargetMotion struct {
	cfg    MotionConfig
	anchor Pose
	rng    *rand.Rand

	elapsed float64
	dest    mgl64.Vec3
	hasDest bool
}

func NewTargetMotion(cfg MotionConfig, anchor Pose, rng *rand.Rand) *TargetMotion {
	if rng == nil {
		rng = common.NewRand(0)
	}
	return &TargetMotion{cfg: cfg, anchor: anchor, rng: rng}
}

// Step advances the motion and writes the new position into pose.
func (m *TargetMotion) Step(dt float64, pose *Pose) {
	if pose == nil {
		return
	}
	m.elapsed += dt
	switch m.cfg.Mode {
	case MotionSinusoid:
		offset := math.Sin(m.elapsed*m.cfg.Frequency*2*math.Pi) * m.cfg.Amplitude
		pose.Position = m.anchor.Position.Add(m.anchor.Right().Mul(offset))
	case MotionRandom:
		if !m.hasDest || common.PlanarDistance(pose.Position, m.dest) < 0.1 {
			d := common.RandomInCircle(m.anchor.Position, m.cfg.Range, m.rng)
			m.dest = mgl64.Vec3{d.X(), m.anchor.Position.Y(), d.Z()}
			m.hasDest = true
		}
		delta := m.dest.Sub(pose.Position)
		dist := delta.Len()
		step := m.cfg.Speed * dt
		if dist <= step {
			pose.Position = m.dest
			return
		}
		pose.Position = pose.Position.Add(delta.Mul(step / dist))
	}
}
