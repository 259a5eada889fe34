package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is shared by every cue and the output device.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a single oscillator with a linear frequency sweep and a linear fade-out.
type tone struct {
	from, to float64
	wave     Wave
	length   int
	pos      int
	phase    float64
	rng      *rand.Rand
}

// Tone returns a streamer that sweeps from one frequency to another over d.
func Tone(from, to float64, d time.Duration, wave Wave, rng *rand.Rand) beep.Streamer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &tone{from: from, to: to, wave: wave, length: SampleRate.N(d), rng: rng}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Recipe builds a fresh streamer for one playback of a cue.
type Recipe func(rng *rand.Rand) beep.Streamer

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func gap(n int) beep.Streamer { return beep.Silence(SampleRate.N(ms(n))) }

func scaled(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}
