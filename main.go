package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/vrarena/config"
	"github.com/milk9111/vrarena/observability"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	arenaName := flag.String("arena", "", "arena spec to load (overrides arena.spec)")
	debug := flag.Bool("debug", false, "draw physics shapes and AI state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *arenaName != "" {
		cfg.Arena.Spec = *arenaName
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("vrarena")
	ebiten.SetTPS(cfg.Sim.TickRate)

	game, err := NewGame(cfg, logger, *debug)
	if err != nil {
		logger.Fatal("game: init failed", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game: run failed", zap.Error(err))
	}
}
