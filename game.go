package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/vrarena/audio"
	"github.com/milk9111/vrarena/common"
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/config"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/prefabs"
	"github.com/milk9111/vrarena/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	dt     float64
	debug  bool

	sim     *sim.Sim
	input   *Input
	view    *View
	cues    *audio.CueBank
	haptics *audio.HapticRecorder
	player  *eaudio.Player
	watcher *prefabs.Watcher
	log     *zap.Logger
}

func NewGame(cfg *config.Config, log *zap.Logger, debug bool) (*Game, error) {
	prefabs.SetDiskDir(cfg.Prefabs.Dir)

	g := &Game{
		dt:      cfg.Sim.DT(),
		debug:   debug,
		input:   NewInput(),
		haptics: audio.NewHapticRecorder(log),
		log:     log,
	}

	rng := common.NewRand(uint64(cfg.Sim.Seed))
	opts := sim.Options{ArenaSpec: cfg.Arena.Spec, Rand: rng, Logger: log, Haptics: g.haptics}
	if cfg.Audio.Enabled {
		g.cues = audio.NewCueBank(nil, rng, log)
		opts.Cues = append(opts.Cues, g.cues)
	}

	s, err := sim.New(opts)
	if err != nil {
		return nil, err
	}
	g.sim = s
	g.view = NewView(s.Arena.Spec, baseWidth, baseHeight)

	if g.cues != nil {
		g.cues.Listener = g.listener
		ctx := eaudio.NewContext(cfg.Audio.SampleRate)
		p, err := audio.NewEbitenPlayer(ctx, g.cues)
		if err != nil {
			log.Warn("game: audio disabled", zap.Error(err))
		} else {
			p.Play()
			g.player = p
		}
	}

	if cfg.Prefabs.Watch && cfg.Prefabs.Dir != "" {
		w, err := prefabs.NewWatcher(cfg.Prefabs.Dir, filepath.Join(cfg.Prefabs.Dir, "scripts"))
		if err != nil {
			log.Warn("game: hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.player != nil {
		_ = g.player.Close()
	}
}

func (g *Game) listener() mgl64.Vec3 {
	if pose, ok := ecs.Get(g.sim.World, g.sim.Arena.Player, component.TransformComponent.Kind()); ok {
		return pose.Position
	}
	return mgl64.Vec3{}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.sim.DrainChanges(g.watcher)
	if in := g.sim.Input(); in != nil {
		g.input.Update(in)
	}
	g.sim.Step(g.dt)
	g.haptics.Tick(g.dt)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.sim.World, g.debug)
	if g.debug {
		g.view.DrawPhysics(screen, g.sim.World.PhysicsWorld())
	}
	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) hud() string {
	m := g.sim.Match()
	sum := g.sim.Summary()
	text := fmt.Sprintf("FPS: %.1f  match: %s  score: %d/%d  time: %.1f\n",
		ebiten.ActualFPS(), m.State(), m.Score(), m.Config().TargetScore, m.Remaining())
	text += fmt.Sprintf("shots: %d  hits: %d  headshots: %d  kills: %d  targets: %d  deaths: %d\n",
		sum.ShotsFired, sum.Hits, sum.Headshots, sum.Kills, sum.TargetsDestroyed, sum.PlayerDeaths)

	w := g.sim.World
	if h, ok := ecs.Get(w, g.sim.Arena.Player, component.HealthComponent.Kind()); ok {
		text += fmt.Sprintf("health: %.0f/%.0f", h.CurrentHealth(), h.MaxHealth())
	}
	if wp, ok := ecs.Get(w, g.sim.Arena.Player, component.WeaponComponent.Kind()); ok {
		text += fmt.Sprintf("  ammo: %d/%d", wp.CurrentAmmo(), wp.MaxAmmo())
		if wp.IsReloading() {
			text += " (reloading)"
		}
		if !wp.HasMagazine() {
			text += " (no magazine)"
		}
	}
	if v := g.haptics.Intensity(core.HandRight); v > 0 {
		text += fmt.Sprintf("  rumble: %.2f", v)
	}
	if m.State() != core.MatchPlaying {
		text += "\n\nEnter: start  WASD: move  arrows: turn  space: fire  R: reload  E: eject  I: insert  F1: debug"
	}
	return text
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
