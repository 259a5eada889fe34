package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/config"
	"github.com/milk9111/vrarena/prefabs"
)

const shortRange = `
name: short_range
bounds: {min_x: -10, min_z: -10, max_x: 10, max_z: 10}
cell_size: 0.5
agent_radius: 0.4
player: {prefab: player.yaml, x: 0, z: -5}
targets:
  prefab: still_target.yaml
  interval: 0.1
  max_alive: 1
  points:
    - {x: 0, y: 0, z: 4}
match: {duration: 2, target_score: 1000}
`

const stillTarget = `
components:
  target_tag: {}
  target: {hits: 1, points: 10}
  collider:
    layer: target
    shapes:
      - {radius: 0.5, height: 1, offset_y: 0.9}
`

func useArenaDir(t *testing.T, cfg *config.Config) {
	dir := t.TempDir()
	for name, src := range map[string]string{"short.yaml": shortRange, "still_target.yaml": stillTarget} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	prev := prefabs.DiskDir()
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })
	cfg.Prefabs.Dir = dir
	cfg.Arena.Spec = "short.yaml"
}

func TestRunPlaysOneMatch(t *testing.T) {
	cfg := config.Default()
	useArenaDir(t, cfg)
	cfg.Sim.Seed = 11
	cfg.Sim.MaxTicks = 600

	sum, err := run(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, core.MatchGameOver, sum.State)
	assert.Positive(t, sum.ShotsFired)
	assert.Positive(t, sum.TargetsDestroyed, "a target straight ahead is shot down")
	assert.Equal(t, 10*sum.TargetsDestroyed, sum.Score)
	assert.Less(t, sum.Ticks, uint64(600))

	var out bytes.Buffer
	printSummary(&out, sum)
	assert.Contains(t, out.String(), sum.MatchID.String())
	assert.Contains(t, out.String(), "targets:")
}

func TestRunTickCap(t *testing.T) {
	cfg := config.Default()
	useArenaDir(t, cfg)
	cfg.Audio.Enabled = false
	cfg.Sim.MaxTicks = 10

	sum, err := run(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), sum.Ticks)
	assert.Equal(t, core.MatchPlaying, sum.State)
}
