package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/prefabs"
)

// aiScriptRuntime holds one compiled lifecycle script per agent.
type aiScriptRuntime struct {
	scriptPath  string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	initial     core.AIState
	hasInitial  bool
	initialized bool
	current     core.AIState

	pending    core.AIState
	hasPending bool
}

const aiLifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

// aiScriptContext is what the engine functions of a script can reach.
type aiScriptContext struct {
	World      *ecs.World
	Entity     ecs.Entity
	Controller *core.AIController
	Log        *zap.Logger
}

// runScript mirrors controller transitions into onExit/onEnter calls, runs update
// and applies a transition the script asked for. A scripted transition waits for
// the next tick when the controller already changed state this tick.
func (s *AISystem) runScript(ctx *aiScriptContext, script *component.AIScript, before core.AIState) {
	rt, err := s.getScriptRuntime(ctx.Entity, script.Path)
	if err != nil {
		s.warnScript(ctx.Entity, script.Path, "ai: load script failed", err)
		return
	}

	engine := buildAIScriptEngine(ctx, rt)
	c := ctx.Controller

	if !rt.initialized {
		if rt.hasInitial {
			c.ForceState(rt.initial)
		}
		rt.current = c.CurrentState()
		rt.initialized = true
		if err := rt.runPhase("enter", rt.current, engine); err != nil {
			s.warnScript(ctx.Entity, script.Path, "ai: script onEnter failed", err)
			return
		}
	} else if c.CurrentState() != rt.current {
		if err := rt.switchTo(c.CurrentState(), engine); err != nil {
			s.warnScript(ctx.Entity, script.Path, "ai: script transition failed", err)
			return
		}
	}

	if err := rt.runPhase("update", rt.current, engine); err != nil {
		s.warnScript(ctx.Entity, script.Path, "ai: script update failed", err)
		return
	}

	if !rt.hasPending {
		return
	}
	if rt.pending == rt.current {
		rt.hasPending = false
		return
	}
	if c.CurrentState() != before {
		return
	}

	c.ForceState(rt.pending)
	rt.hasPending = false
	if c.CurrentState() == rt.current {
		return
	}
	if err := rt.switchTo(c.CurrentState(), engine); err != nil {
		s.warnScript(ctx.Entity, script.Path, "ai: script transition failed", err)
	}
}

func (s *AISystem) getScriptRuntime(ent ecs.Entity, path string) (*aiScriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	if s.scripts == nil {
		s.scripts = map[ecs.Entity]*aiScriptRuntime{}
	}

	if rt, ok := s.scripts[ent]; ok && rt != nil && rt.scriptPath == path {
		return rt, nil
	}

	rt, err := compileAIScript(path)
	if err != nil {
		return nil, err
	}
	s.scripts[ent] = rt
	return rt, nil
}

func compileAIScript(path string) (*aiScriptRuntime, error) {
	scriptBytes, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + aiLifecycleDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	rt := &aiScriptRuntime{
		scriptPath: path,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}

	// Resolve the optional initial state from the script global `initial_state`.
	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := rt.runPhase("noop", core.AIIdle, noop); err != nil {
		return nil, err
	}
	if compiled.IsDefined("initial_state") {
		name := strings.TrimSpace(compiled.Get("initial_state").String())
		if name != "" {
			st, err := core.ParseAIState(name)
			if err != nil {
				return nil, fmt.Errorf("%s: initial_state: %w", path, err)
			}
			rt.initial = st
			rt.hasInitial = true
		}
	}
	return rt, nil
}

func (rt *aiScriptRuntime) switchTo(next core.AIState, engine *tengo.ImmutableMap) error {
	if err := rt.runPhase("exit", rt.current, engine); err != nil {
		return err
	}
	rt.current = next
	return rt.runPhase("enter", rt.current, engine)
}

func (rt *aiScriptRuntime) runPhase(phase string, current core.AIState, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__current_state", current.String()); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildAIScriptEngine(ctx *aiScriptContext, rt *aiScriptRuntime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	c := ctx.Controller

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		st, err := core.ParseAIState(objectAsString(args[0]))
		if err != nil || strings.TrimSpace(objectAsString(args[0])) == "" {
			return tengo.FalseValue, nil
		}
		rt.pending = st
		rt.hasPending = true
		return tengo.TrueValue, nil
	}}

	values["state"] = &tengo.UserFunction{Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: c.CurrentState().String()}, nil
	}}

	values["can_see"] = &tengo.UserFunction{Name: "can_see", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(c.CanSeeTarget()), nil
	}}

	values["distance"] = &tengo.UserFunction{Name: "distance", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: c.TargetDistance()}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		t, ok := ecs.Get(ctx.World, ctx.Entity, component.TransformComponent.Kind())
		if !ok {
			return vecObject(0, 0, 0), nil
		}
		return vecObject(t.Position.X(), t.Position.Y(), t.Position.Z()), nil
	}}

	values["target_position"] = &tengo.UserFunction{Name: "target_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, ok := c.TargetPosition()
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return vecObject(p.X(), p.Y(), p.Z()), nil
	}}

	values["health_fraction"] = &tengo.UserFunction{Name: "health_fraction", Value: func(args ...tengo.Object) (tengo.Object, error) {
		h, ok := ecs.Get(ctx.World, ctx.Entity, component.HealthComponent.Kind())
		if !ok {
			return &tengo.Float{Value: 1}, nil
		}
		return &tengo.Float{Value: h.Fraction()}, nil
	}}

	values["ammo"] = &tengo.UserFunction{Name: "ammo", Value: func(args ...tengo.Object) (tengo.Object, error) {
		wp, ok := ecs.Get(ctx.World, ctx.Entity, component.WeaponComponent.Kind())
		if !ok {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(wp.CurrentAmmo())}, nil
	}}

	values["reload"] = &tengo.UserFunction{Name: "reload", Value: func(args ...tengo.Object) (tengo.Object, error) {
		wp, ok := ecs.Get(ctx.World, ctx.Entity, component.WeaponComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		return boolObject(wp.StartReload()), nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		ctx.Log.Info("ai: script",
			zap.Stringer("entity", ctx.Entity),
			zap.String("state", c.CurrentState().String()),
			zap.String("msg", strings.Join(parts, " ")),
		)
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func vecObject(x, y, z float64) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}, &tengo.Float{Value: z}}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
