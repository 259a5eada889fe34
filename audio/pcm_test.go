package audio_test

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/vrarena/audio"
)

func constant(frames int, l, r float64) beep.Streamer {
	left := frames
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left == 0 {
			return 0, false
		}
		n := min(left, len(samples))
		for i := range samples[:n] {
			samples[i] = [2]float64{l, r}
		}
		left -= n
		return n, true
	})
}

func TestPCMReaderEncodesFrames(t *testing.T) {
	r := audio.NewPCMReader(constant(3, 1, -2))

	p := make([]byte, 64)
	n, err := r.Read(p)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	for i := 0; i < 3; i++ {
		l := int16(binary.LittleEndian.Uint16(p[i*4:]))
		rr := int16(binary.LittleEndian.Uint16(p[i*4+2:]))
		assert.Equal(t, int16(32767), l)
		assert.Equal(t, int16(-32767), rr, "samples are clipped")
	}

	_, err = r.Read(p)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPCMReaderPartialFrame(t *testing.T) {
	r := audio.NewPCMReader(constant(10, 0, 0))
	n, err := r.Read(make([]byte, 3))
	assert.NoError(t, err)
	assert.Zero(t, n)

	n, err = r.Read(make([]byte, 10))
	assert.NoError(t, err)
	assert.Equal(t, 8, n, "only whole frames are written")
}

func TestPCMReaderOverCueBankNeverEnds(t *testing.T) {
	r := audio.NewPCMReader(audio.NewCueBank(nil, nil, nil))
	n, err := io.ReadFull(r, make([]byte, 4096))
	assert.NoError(t, err)
	assert.Equal(t, 4096, n)
}
