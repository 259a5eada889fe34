package system

import (
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// AISystem ticks every AI controller, runs attached lifecycle scripts and
// removes agents whose death delay elapsed.
type AISystem struct {
	log     *zap.Logger
	scripts map[ecs.Entity]*aiScriptRuntime
	failed  map[ecs.Entity]string
}

func NewAISystem(log *zap.Logger) *AISystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &AISystem{
		log:     log,
		scripts: map[ecs.Entity]*aiScriptRuntime{},
		failed:  map[ecs.Entity]string{},
	}
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	active := MatchActive(w)

	ecs.ForEach(w, component.AIComponent.Kind(), func(e ecs.Entity, c *core.AIController) {
		before := c.CurrentState()
		c.Tick(dt)

		if script, ok := ecs.Get(w, e, component.AIScriptComponent.Kind()); ok && (active || c.CurrentState() == core.AIDead) {
			s.runScript(&aiScriptContext{World: w, Entity: e, Controller: c, Log: s.log}, script, before)
		}

		if c.ReadyForRemoval() {
			s.log.Info("ai: removing dead agent", zap.Stringer("entity", e))
			c.Close()
			delete(s.scripts, e)
			delete(s.failed, e)
			DestroyWithColliders(w, e)
		}
	})

	for e := range s.scripts {
		if !ecs.IsAlive(w, e) {
			delete(s.scripts, e)
			delete(s.failed, e)
		}
	}
}

// InvalidateScripts drops compiled scripts so edited sources are picked up on the next tick.
func (s *AISystem) InvalidateScripts() {
	clear(s.scripts)
	clear(s.failed)
}

func (s *AISystem) warnScript(e ecs.Entity, path, msg string, err error) {
	if s.failed[e] == path {
		return
	}
	s.failed[e] = path
	s.log.Warn(msg,
		zap.Stringer("entity", e),
		zap.String("script", path),
		zap.Error(err),
	)
}

// MatchActive reports whether gameplay should run. Worlds without a match are always active.
func MatchActive(w *ecs.World) bool {
	_, m, ok := ecs.First(w, component.MatchComponent.Kind())
	return !ok || m.Active()
}
