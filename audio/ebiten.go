package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// NewEbitenPlayer routes s through an ebiten audio player.
func NewEbitenPlayer(ctx *eaudio.Context, s beep.Streamer) (*eaudio.Player, error) {
	if ctx.SampleRate() != int(SampleRate) {
		return nil, fmt.Errorf("audio: context runs at %d Hz, want %d", ctx.SampleRate(), int(SampleRate))
	}
	return ctx.NewPlayer(NewPCMReader(s))
}
