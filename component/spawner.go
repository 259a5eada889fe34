package component

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/vrarena/common"
)

type SpawnerConfig struct {
	Interval float64
	MaxAlive int
	Points   []mgl64.Vec3
	// Jitter scatters spawns around the chosen point.
	Jitter float64
}

func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{Interval: 2, MaxAlive: 5}
}

// TargetSpawner decides when and where targets appear.
type TargetSpawner struct {
	cfg   SpawnerConfig
	timer float64
	rng   *rand.Rand
}

func NewTargetSpawner(cfg SpawnerConfig, rng *rand.Rand) *TargetSpawner {
	if rng == nil {
		rng = common.NewRand(0)
	}
	return &TargetSpawner{cfg: cfg, timer: cfg.Interval, rng: rng}
}

// Reset restarts the spawn interval.
func (s *TargetSpawner) Reset() { s.timer = s.cfg.Interval }

// Tick returns a spawn position when the interval elapsed and fewer than MaxAlive targets exist.
func (s *TargetSpawner) Tick(dt float64, alive int) (mgl64.Vec3, bool) {
	s.timer -= dt
	if s.timer > 0 {
		return mgl64.Vec3{}, false
	}
	s.timer = s.cfg.Interval
	if len(s.cfg.Points) == 0 || (s.cfg.MaxAlive > 0 && alive >= s.cfg.MaxAlive) {
		return mgl64.Vec3{}, false
	}
	p := s.cfg.Points[s.rng.IntN(len(s.cfg.Points))]
	if s.cfg.Jitter > 0 {
		jittered := common.RandomInCircle(p, s.cfg.Jitter, s.rng)
		p = mgl64.Vec3{jittered.X(), p.Y(), jittered.Z()}
	}
	return p, true
}
