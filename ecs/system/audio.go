package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
)

// CueBus fans every cue out to its sinks in registration order.
type CueBus struct {
	sinks []core.CueSink
	log   *zap.Logger
}

func NewCueBus(log *zap.Logger, sinks ...core.CueSink) *CueBus {
	if log == nil {
		log = zap.NewNop()
	}
	b := &CueBus{log: log}
	for _, s := range sinks {
		b.Add(s)
	}
	return b
}

func (b *CueBus) Add(s core.CueSink) {
	if s != nil {
		b.sinks = append(b.sinks, s)
	}
}

// PlayCue implements core.CueSink.
func (b *CueBus) PlayCue(id core.CueID, at mgl64.Vec3) {
	b.log.Debug("audio: cue", zap.String("cue", string(id)))
	for _, s := range b.sinks {
		s.PlayCue(id, at)
	}
}
