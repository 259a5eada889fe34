package sim_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/vrarena/common"
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/component/mocks"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/prefabs"
	"github.com/milk9111/vrarena/sim"
)

const testRange = `
name: test_range
bounds: {min_x: -10, min_z: -10, max_x: 10, max_z: 10}
cell_size: 0.5
agent_radius: 0.4
player: {prefab: player.yaml, x: 0, z: -5}
enemies:
  - {prefab: soldier.yaml, x: 0, z: 6, yaw: 180}
targets:
  prefab: target.yaml
  interval: 0.25
  max_alive: 2
  points:
    - {x: 4, y: 0, z: 0}
match: {duration: 1, target_score: 100}
`

const dt = 1.0 / 60

// useDisk serves files from a temp prefab dir; anything missing falls back to
// the embedded prefabs.
func useDisk(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	}
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir(dir)
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })
	return dir
}

func TestNewWiresArena(t *testing.T) {
	useDisk(t, map[string]string{"range.yaml": testRange})

	s, err := sim.New(sim.Options{ArenaSpec: "range.yaml", Rand: common.NewRand(7)})
	require.NoError(t, err)

	assert.Len(t, s.Scheduler.Systems(), 14)
	assert.Len(t, s.Arena.Enemies, 1)
	require.NotNil(t, s.Input())
	assert.Equal(t, core.MatchMenu, s.Match().State())

	weapon, ok := ecs.Get(s.World, s.Arena.Player, component.WeaponComponent.Kind())
	require.True(t, ok)
	assert.True(t, weapon.CanFire())
}

func TestNewReportsBadArena(t *testing.T) {
	useDisk(t, map[string]string{"broken.yaml": "name: broken\n"})
	_, err := sim.New(sim.Options{ArenaSpec: "broken.yaml"})
	assert.ErrorContains(t, err, "sim:")
}

func TestMatchRunsToGameOver(t *testing.T) {
	useDisk(t, map[string]string{"range.yaml": testRange})
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCueSink(ctrl)
	cues.EXPECT().PlayCue(core.CueGameStart, gomock.Any()).Times(1)
	cues.EXPECT().PlayCue(core.CueGameOver, gomock.Any()).Times(1)
	cues.EXPECT().PlayCue(gomock.Any(), gomock.Any()).AnyTimes()

	s, err := sim.New(sim.Options{ArenaSpec: "range.yaml", Rand: common.NewRand(3), Cues: []core.CueSink{cues}})
	require.NoError(t, err)

	s.Start()
	s.Step(dt)
	require.Equal(t, core.MatchPlaying, s.Match().State())
	id := s.Match().ID()
	assert.NotEqual(t, uuid.Nil, id)

	spawned := false
	for i := 0; i < 90 && s.Match().State() == core.MatchPlaying; i++ {
		if in := s.Input(); in != nil && i%10 == 0 {
			in.Fire = true
			in.Trigger = 1
		}
		s.Step(dt)
		if ecs.Count(s.World, component.TargetTagComponent.Kind()) > 0 {
			spawned = true
		}
	}

	assert.True(t, spawned, "the spawner runs while the match is active")
	assert.Equal(t, core.MatchGameOver, s.Match().State())
	assert.Zero(t, ecs.Count(s.World, component.TargetTagComponent.Kind()), "game over clears targets")

	sum := s.Summary()
	assert.Equal(t, id, sum.MatchID)
	assert.Equal(t, core.MatchGameOver, sum.State)
	assert.Positive(t, sum.ShotsFired)
	assert.InDelta(t, float64(sum.Ticks)*dt, sum.Time, 1e-9)
}

func TestHandleChange(t *testing.T) {
	useDisk(t, map[string]string{"range.yaml": testRange})
	obs, logs := observer.New(zap.InfoLevel)

	s, err := sim.New(sim.Options{ArenaSpec: "range.yaml", Logger: zap.New(obs)})
	require.NoError(t, err)
	soldier := s.Arena.Enemies[0]

	soldierSrc, err := prefabs.Load("soldier.yaml")
	require.NoError(t, err)
	tuned := []byte(strings.Replace(string(soldierSrc), "damage: 10", "damage: 33", 1))
	require.NoError(t, os.WriteFile(filepath.Join(prefabs.DiskDir(), "soldier.yaml"), tuned, 0o644))

	s.HandleChange(prefabs.Change{Name: "soldier.yaml", Kind: prefabs.ChangeSpec})
	weapon, _ := ecs.Get(s.World, soldier, component.WeaponComponent.Kind())
	assert.Equal(t, 33.0, weapon.Config().Damage)
	assert.Equal(t, 1, logs.FilterMessage("sim: tuning reloaded").Len())

	s.HandleChange(prefabs.Change{Name: "scripts/sentry.tengo", Kind: prefabs.ChangeScript})
	assert.Equal(t, 1, logs.FilterMessage("sim: scripts reloaded").Len())

	s.HandleChange(prefabs.Change{Name: "ghost.yaml", Kind: prefabs.ChangeSpec})
	assert.Equal(t, 1, logs.FilterMessage("sim: reload failed").Len())
}

func TestAutopilotAimsAndFires(t *testing.T) {
	useDisk(t, map[string]string{"range.yaml": testRange})
	s, err := sim.New(sim.Options{ArenaSpec: "range.yaml", Rand: common.NewRand(5)})
	require.NoError(t, err)

	pilot := sim.NewAutopilot()
	pilot.Drive(s)
	in := s.Input()
	assert.True(t, in.Fire, "the soldier stands straight ahead")
	assert.Zero(t, in.Turn)

	pose, _ := ecs.Get(s.World, s.Arena.Player, component.TransformComponent.Kind())
	pose.Rotation = common.YawRotation(mgl64.DegToRad(-90))
	in.Fire = false
	pilot.Drive(s)
	assert.Positive(t, in.Turn, "turns right toward the enemy")
	assert.False(t, in.Fire)
}

func TestAutopilotReloadsEmptyWeapon(t *testing.T) {
	useDisk(t, map[string]string{"range.yaml": testRange})
	s, err := sim.New(sim.Options{ArenaSpec: "range.yaml"})
	require.NoError(t, err)

	wp, _ := ecs.Get(s.World, s.Arena.Player, component.WeaponComponent.Kind())
	socket, ok := ecs.Get(s.World, s.Arena.Player, component.MagazineSocketComponent.Kind())
	require.True(t, ok)
	socket.Eject()
	require.Zero(t, wp.CurrentAmmo())

	sim.NewAutopilot().Drive(s)
	assert.True(t, s.Input().Insert)
}
