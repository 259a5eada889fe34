package audio

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
)

// DefaultRecipes synthesises every combat cue so the arena needs no sample assets.
func DefaultRecipes() map[core.CueID]Recipe {
	return map[core.CueID]Recipe{
		core.CueShoot: func(rng *rand.Rand) beep.Streamer {
			return beep.Mix(
				scaled(Tone(0, 0, ms(80), WaveNoise, rng), 0.5),
				scaled(Tone(220, 90, ms(120), WaveSquare, rng), 0.4),
			)
		},
		core.CueEmpty: func(rng *rand.Rand) beep.Streamer {
			return scaled(Tone(1200, 1100, ms(30), WaveSquare, rng), 0.3)
		},
		core.CueReload: func(rng *rand.Rand) beep.Streamer {
			return beep.Seq(
				scaled(Tone(400, 380, ms(40), WaveSquare, rng), 0.3),
				gap(60),
				scaled(Tone(600, 580, ms(40), WaveSquare, rng), 0.3),
			)
		},
		core.CueMagazineInsert: func(rng *rand.Rand) beep.Streamer {
			return scaled(Tone(300, 260, ms(50), WaveSquare, rng), 0.35)
		},
		core.CueMagazineEject: func(rng *rand.Rand) beep.Streamer {
			return scaled(Tone(500, 250, ms(60), WaveSaw, rng), 0.3)
		},
		core.CueHit: func(rng *rand.Rand) beep.Streamer {
			return scaled(Tone(900, 700, ms(60), WaveSine, rng), 0.5)
		},
		core.CueTargetDestroyed: func(rng *rand.Rand) beep.Streamer {
			return beep.Seq(
				scaled(Tone(660, 660, ms(80), WaveSine, rng), 0.5),
				scaled(Tone(990, 990, ms(120), WaveSine, rng), 0.5),
			)
		},
		core.CueDeath: func(rng *rand.Rand) beep.Streamer {
			return scaled(Tone(200, 60, ms(400), WaveSaw, rng), 0.5)
		},
		core.CueGameStart: func(rng *rand.Rand) beep.Streamer {
			return beep.Seq(
				scaled(Tone(440, 440, ms(100), WaveSine, rng), 0.4),
				scaled(Tone(554, 554, ms(100), WaveSine, rng), 0.4),
				scaled(Tone(659, 659, ms(160), WaveSine, rng), 0.4),
			)
		},
		core.CueGameOver: func(rng *rand.Rand) beep.Streamer {
			return beep.Seq(
				scaled(Tone(659, 659, ms(150), WaveSine, rng), 0.4),
				scaled(Tone(554, 554, ms(150), WaveSine, rng), 0.4),
				scaled(Tone(440, 420, ms(300), WaveSine, rng), 0.4),
			)
		},
	}
}

// CueBank plays synthesised cues into a shared mixer. It implements
// core.CueSink and is itself a beep.Streamer that never drains.
type CueBank struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	recipes map[core.CueID]Recipe
	rng     *rand.Rand
	played  map[core.CueID]int
	unknown map[core.CueID]bool
	log     *zap.Logger

	// Listener returns the ear position; cues are attenuated by distance from it.
	Listener func() mgl64.Vec3
	// Falloff is the distance at which a cue plays at half volume.
	Falloff float64
	// Volume is the linear master gain.
	Volume float64
}

var _ core.CueSink = (*CueBank)(nil)

func NewCueBank(recipes map[core.CueID]Recipe, rng *rand.Rand, log *zap.Logger) *CueBank {
	if recipes == nil {
		recipes = DefaultRecipes()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CueBank{
		mixer:   &beep.Mixer{},
		recipes: recipes,
		rng:     rng,
		played:  map[core.CueID]int{},
		unknown: map[core.CueID]bool{},
		log:     log,
		Falloff: 10,
		Volume:  1,
	}
}

// PlayCue starts a new instance of id at world position at.
func (b *CueBank) PlayCue(id core.CueID, at mgl64.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()

	recipe, ok := b.recipes[id]
	if !ok {
		if !b.unknown[id] {
			b.unknown[id] = true
			b.log.Warn("audio: no recipe for cue", zap.String("cue", string(id)))
		}
		return
	}

	gain := b.gain(at)
	b.played[id]++
	if gain <= 0 {
		return
	}
	b.mixer.Add(&effects.Volume{
		Streamer: recipe(b.rng),
		Base:     2,
		Volume:   math.Log2(gain),
	})
}

// Gain returns the linear gain a cue at position at would play with.
func (b *CueBank) Gain(at mgl64.Vec3) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gain(at)
}

func (b *CueBank) gain(at mgl64.Vec3) float64 {
	if b.Volume <= 0 {
		return 0
	}
	if b.Listener == nil || b.Falloff <= 0 {
		return b.Volume
	}
	d := at.Sub(b.Listener()).Len()
	return b.Volume / (1 + d/b.Falloff)
}

// Played returns how many times id was requested.
func (b *CueBank) Played(id core.CueID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played[id]
}

// Active returns the number of cues still sounding.
func (b *CueBank) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixer.Len()
}

// Stream mixes all sounding cues. Gaps are filled with silence.
func (b *CueBank) Stream(samples [][2]float64) (int, bool) {
	b.mu.Lock()
	n, _ := b.mixer.Stream(samples)
	b.mu.Unlock()
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (b *CueBank) Err() error { return nil }
