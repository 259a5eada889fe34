package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/ecs/system"
	"github.com/milk9111/vrarena/prefabs"
)

const echoScript = `
onEnter := func(engine, state, current) {
	engine.log("enter", current)
}

update := func(engine, state, current) {
	if current == "idle" && engine.health_fraction() < 1 {
		engine.transition("patrol")
	}
}

onExit := func(engine, state, current) {
	engine.log("exit", current)
}
`

// useScriptDir points script loading at a temp dir holding the given scripts.
func useScriptDir(t *testing.T, scripts map[string]string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	for name, src := range scripts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", name), []byte(src), 0o644))
	}
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir(dir)
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })
}

func spawnAgent(t *testing.T, w *ecs.World, cfg core.AIConfig, script string) (ecs.Entity, *core.AIController, *core.Health) {
	t.Helper()
	actor, _, health := spawnActor(t, w, mgl64.Vec3{}, core.TeamEnemy, core.RegionBody,
		component.ColliderShape{Radius: 0.4, Height: 1.8})
	pose, _ := ecs.Get(w, actor, component.TransformComponent.Kind())
	c := add(t, w, actor, component.AIComponent, core.NewAIController(cfg, core.AIDeps{
		Pose:   pose,
		Health: health,
		Group:  uint64(actor),
	}))
	if script != "" {
		add(t, w, actor, component.AIScriptComponent, &component.AIScript{Path: script})
	}
	return actor, c, health
}

func scriptMessages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, entry := range logs.FilterMessage("ai: script").All() {
		out = append(out, entry.ContextMap()["msg"].(string))
	}
	return out
}

func TestAISystemScriptLifecycle(t *testing.T) {
	useScriptDir(t, map[string]string{"echo.tengo": echoScript})
	obs, logs := observer.New(zapcore.InfoLevel)

	w := newWorld()
	cfg := core.DefaultAIConfig()
	cfg.StartingState = core.AIIdle
	_, c, health := spawnAgent(t, w, cfg, "echo.tengo")
	sched := ecs.NewScheduler(system.NewAISystem(zap.New(obs)))

	sched.Step(w, 0.1)
	assert.Equal(t, core.AIIdle, c.CurrentState())
	assert.Equal(t, []string{"enter idle"}, scriptMessages(logs))

	health.TakeDamage(10, core.TeamPlayer)
	sched.Step(w, 0.1)
	assert.Equal(t, core.AIPatrol, c.CurrentState(), "the script requested patrol")
	assert.Equal(t, []string{"enter idle", "exit idle", "enter patrol"}, scriptMessages(logs))
}

func TestAISystemScriptInitialState(t *testing.T) {
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir("")
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })

	w := newWorld()
	cfg := core.DefaultAIConfig()
	cfg.StartingState = core.AIIdle
	_, c, _ := spawnAgent(t, w, cfg, "sentry.tengo")

	ecs.NewScheduler(system.NewAISystem(nil)).Step(w, 0.1)
	assert.Equal(t, core.AIPatrol, c.CurrentState(), "the embedded sentry starts on patrol")
}

func TestAISystemWarnsOnceForBrokenScript(t *testing.T) {
	useScriptDir(t, map[string]string{"broken.tengo": "onEnter := func(\n"})
	obs, logs := observer.New(zapcore.WarnLevel)

	w := newWorld()
	spawnAgent(t, w, core.DefaultAIConfig(), "missing.tengo")
	spawnAgent(t, w, core.DefaultAIConfig(), "broken.tengo")
	run(w, ecs.NewScheduler(system.NewAISystem(zap.New(obs))), 0.1, 3)

	assert.Equal(t, 2, logs.FilterMessage("ai: load script failed").Len())
}

func TestAISystemRemovesDeadAgent(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	w := newWorld()
	cfg := core.DefaultAIConfig()
	cfg.DeathRemovalDelay = 0.5
	actor, c, health := spawnAgent(t, w, cfg, "")
	sched := ecs.NewScheduler(system.NewPhysicsSystem(), system.NewAISystem(zap.New(obs)))
	sched.Step(w, 0.25)
	require.NotEmpty(t, w.PhysicsWorld().Owners())

	health.TakeDamage(500, core.TeamPlayer)
	assert.Equal(t, core.AIDead, c.CurrentState())

	sched.Step(w, 0.25)
	assert.True(t, ecs.IsAlive(w, actor), "the body stays for the removal delay")

	sched.Step(w, 0.25)
	assert.False(t, ecs.IsAlive(w, actor))
	assert.Empty(t, w.PhysicsWorld().Owners(), "hitboxes go with the agent")
	assert.Equal(t, 1, logs.FilterMessage("ai: removing dead agent").Len())
}

func TestAISystemPausedOutsideMatch(t *testing.T) {
	useScriptDir(t, map[string]string{"echo.tengo": echoScript})
	obs, logs := observer.New(zapcore.InfoLevel)

	w := newWorld()
	add(t, w, ecs.CreateEntity(w), component.MatchComponent, core.NewMatch(core.DefaultMatchConfig(), nil, nil))
	spawnAgent(t, w, core.DefaultAIConfig(), "echo.tengo")
	run(w, ecs.NewScheduler(system.NewAISystem(zap.New(obs))), 0.1, 3)

	assert.Empty(t, scriptMessages(logs), "scripts wait for the match to start")
}
