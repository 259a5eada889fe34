package audio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/vrarena/audio"
	core "github.com/milk9111/vrarena/component"
)

func TestHapticRecorder(t *testing.T) {
	r := audio.NewHapticRecorder(nil)

	r.TriggerHaptic(0.5, 0.1, core.HandRight)
	r.TriggerHaptic(0.2, 0.3, core.HandNone)
	r.TriggerHaptic(0, 1, core.HandLeft)

	assert.Equal(t, 2, r.Pulses(), "zero intensity is ignored")
	last, ok := r.Last(core.HandRight)
	assert.True(t, ok)
	assert.Equal(t, audio.Pulse{Hand: core.HandRight, Intensity: 0.5, Duration: 0.1}, last)
	_, ok = r.Last(core.HandLeft)
	assert.False(t, ok)
	assert.Equal(t, 0.5, r.Intensity(core.HandRight))
	assert.Equal(t, 0.2, r.Intensity(core.HandLeft), "HandNone reaches both hands")

	r.Tick(0.15)
	assert.Equal(t, 0.2, r.Intensity(core.HandRight))

	r.Tick(0.2)
	assert.Zero(t, r.Intensity(core.HandRight))
	assert.Zero(t, r.Intensity(core.HandLeft))
	assert.Equal(t, 2, r.Pulses())
}

func TestHapticRecorderClampsIntensity(t *testing.T) {
	r := audio.NewHapticRecorder(nil)
	r.TriggerHaptic(3, 1, core.HandLeft)
	assert.Equal(t, 1.0, r.Intensity(core.HandLeft))
}
