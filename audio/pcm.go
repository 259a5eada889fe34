package audio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 4

// PCMReader encodes a streamer as signed 16-bit little-endian stereo frames.
// Reads always return whole frames. A drained streamer ends the reader with io.EOF.
type PCMReader struct {
	src beep.Streamer
	buf [][2]float64
}

func NewPCMReader(src beep.Streamer) *PCMReader {
	return &PCMReader{src: src}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.src.Stream(buf)
	if !ok && n == 0 {
		if err := r.src.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, s := range buf[:n] {
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame:], uint16(quantize(s[0])))
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame+2:], uint16(quantize(s[1])))
	}
	return n * bytesPerFrame, nil
}

func quantize(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
