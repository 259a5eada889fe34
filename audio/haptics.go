package audio

import (
	"sync"

	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
)

// Pulse is one recorded vibration request.
type Pulse struct {
	Hand      core.Hand
	Intensity float64
	Duration  float64
}

// HapticRecorder implements core.HapticSink for displays without controllers.
// It keeps the active pulses per hand so a debug view can draw them.
type HapticRecorder struct {
	mu     sync.Mutex
	active []activePulse
	last   map[core.Hand]Pulse
	total  int
	log    *zap.Logger
}

type activePulse struct {
	Pulse
	left float64
}

var _ core.HapticSink = (*HapticRecorder)(nil)

func NewHapticRecorder(log *zap.Logger) *HapticRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &HapticRecorder{last: map[core.Hand]Pulse{}, log: log}
}

// TriggerHaptic records a pulse. HandNone vibrates both hands.
func (r *HapticRecorder) TriggerHaptic(intensity, duration float64, hand core.Hand) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Pulse{Hand: hand, Intensity: min(intensity, 1), Duration: duration}
	r.total++
	r.last[hand] = p
	r.active = append(r.active, activePulse{Pulse: p, left: duration})
	r.log.Debug("haptic pulse",
		zap.Stringer("hand", hand),
		zap.Float64("intensity", p.Intensity),
		zap.Float64("duration", duration))
}

// Tick ages every pulse by dt seconds and drops finished ones.
func (r *HapticRecorder) Tick(dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.active[:0]
	for _, p := range r.active {
		p.left -= dt
		if p.left > 0 {
			kept = append(kept, p)
		}
	}
	r.active = kept
}

// Intensity is the strongest active pulse on hand.
func (r *HapticRecorder) Intensity(hand core.Hand) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out float64
	for _, p := range r.active {
		if p.Hand == hand || p.Hand == core.HandNone {
			out = max(out, p.Intensity)
		}
	}
	return out
}

// Pulses returns how many pulses were ever triggered.
func (r *HapticRecorder) Pulses() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Last returns the most recent pulse sent to hand.
func (r *HapticRecorder) Last(hand core.Hand) (Pulse, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.last[hand]
	return p, ok
}
