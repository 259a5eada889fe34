// Command arena-sim plays one arena match without a window and prints a summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/milk9111/vrarena/audio"
	"github.com/milk9111/vrarena/common"
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/config"
	"github.com/milk9111/vrarena/observability"
	"github.com/milk9111/vrarena/prefabs"
	"github.com/milk9111/vrarena/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	arenaName := flag.String("arena", "", "arena spec to load (overrides arena.spec)")
	ticks := flag.Int("ticks", -1, "tick cap (overrides sim.max_ticks)")
	seed := flag.Int64("seed", -1, "random seed (overrides sim.seed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Sim.Headless = true
	if *arenaName != "" {
		cfg.Arena.Spec = *arenaName
	}
	if *ticks >= 0 {
		cfg.Sim.MaxTicks = *ticks
	}
	if *seed >= 0 {
		cfg.Sim.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	sum, err := run(cfg, logger)
	if err != nil {
		logger.Fatal("arena-sim: run failed", zap.Error(err))
	}
	printSummary(os.Stdout, sum)
}

// run plays one match with the autopilot at the wheel.
func run(cfg *config.Config, logger *zap.Logger) (sim.Summary, error) {
	prefabs.SetDiskDir(cfg.Prefabs.Dir)

	rng := common.NewRand(uint64(cfg.Sim.Seed))
	opts := sim.Options{
		ArenaSpec: cfg.Arena.Spec,
		Rand:      rng,
		Logger:    logger,
		Haptics:   audio.NewHapticRecorder(logger),
	}
	var bank *audio.CueBank
	if cfg.Audio.Enabled {
		bank = audio.NewCueBank(nil, rng, logger)
		opts.Cues = append(opts.Cues, bank)
	}

	s, err := sim.New(opts)
	if err != nil {
		return sim.Summary{}, err
	}

	// Rendered audio is discarded; mixing still runs so cue recipes are exercised.
	var pcm io.Reader
	if bank != nil {
		pcm = audio.NewPCMReader(bank)
	}
	frameBytes := 4 * int(float64(audio.SampleRate)*cfg.Sim.DT())
	buf := make([]byte, frameBytes)

	pilot := sim.NewAutopilot()
	s.Start()
	for i := 0; cfg.Sim.MaxTicks == 0 || i < cfg.Sim.MaxTicks; i++ {
		pilot.Drive(s)
		s.Step(cfg.Sim.DT())
		if pcm != nil {
			if _, err := io.ReadFull(pcm, buf); err != nil {
				return sim.Summary{}, fmt.Errorf("arena-sim: mix audio: %w", err)
			}
		}
		if i > 0 && s.Match().State() == core.MatchGameOver {
			break
		}
	}
	return s.Summary(), nil
}

func printSummary(w io.Writer, s sim.Summary) {
	fmt.Fprintf(w, "match:     %s\n", s.MatchID)
	fmt.Fprintf(w, "state:     %s\n", s.State)
	fmt.Fprintf(w, "score:     %d\n", s.Score)
	fmt.Fprintf(w, "time:      %.2fs (%d ticks)\n", s.Time, s.Ticks)
	fmt.Fprintf(w, "shots:     %d\n", s.ShotsFired)
	fmt.Fprintf(w, "hits:      %d (%.0f%%, %d headshots)\n", s.Hits, 100*s.Accuracy(), s.Headshots)
	fmt.Fprintf(w, "kills:     %d\n", s.Kills)
	fmt.Fprintf(w, "targets:   %d\n", s.TargetsDestroyed)
	fmt.Fprintf(w, "deaths:    %d\n", s.PlayerDeaths)
}
