package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
	"github.com/milk9111/vrarena/prefabs"
)

const viewMargin = 24

// View draws the arena from above. +Z points up the screen, +X to the right.
type View struct {
	spec  *prefabs.ArenaSpec
	scale float64
	offX  float64
	offY  float64
	floor color.Color
}

func NewView(spec *prefabs.ArenaSpec, screenW, screenH int) *View {
	b := spec.Bounds
	w, h := b.MaxX-b.MinX, b.MaxZ-b.MinZ
	scale := math.Min((float64(screenW)-2*viewMargin)/w, (float64(screenH)-2*viewMargin)/h)
	return &View{
		spec:  spec,
		scale: scale,
		offX:  (float64(screenW) - w*scale) / 2,
		offY:  (float64(screenH) - h*scale) / 2,
		floor: spec.FloorColor.Or(colornames.Darkolivegreen),
	}
}

// ToScreen maps a world position onto the screen.
func (v *View) ToScreen(p mgl64.Vec3) (float32, float32) {
	x := v.offX + (p.X()-v.spec.Bounds.MinX)*v.scale
	y := v.offY + (v.spec.Bounds.MaxZ-p.Z())*v.scale
	return float32(x), float32(y)
}

func (v *View) px(meters float64) float32 {
	return float32(meters * v.scale)
}

func (v *View) Draw(screen *ebiten.Image, w *ecs.World, debug bool) {
	screen.Fill(colornames.Black)
	b := v.spec.Bounds
	x0, y0 := v.ToScreen(mgl64.Vec3{b.MinX, 0, b.MaxZ})
	vector.DrawFilledRect(screen, x0, y0, v.px(b.MaxX-b.MinX), v.px(b.MaxZ-b.MinZ), v.floor, false)

	ecs.ForEach2(w, component.ObstacleTagComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.ObstacleTag, c *component.Collider) {
		pose, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		fill := tintOf(w, e, colornames.Gray)
		for _, s := range c.Shapes {
			center := pose.Position.Add(s.Offset)
			x, y := v.ToScreen(mgl64.Vec3{center.X() - s.HalfX, 0, center.Z() + s.HalfZ})
			vector.DrawFilledRect(screen, x, y, v.px(2*s.HalfX), v.px(2*s.HalfZ), fill, false)
		}
	})

	ecs.ForEach2(w, component.TargetTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.TargetTag, t *component.Transform) {
		x, y := v.ToScreen(t.Position)
		vector.DrawFilledCircle(screen, x, y, v.px(0.35), tintOf(w, e, colornames.Gold), true)
		vector.StrokeCircle(screen, x, y, v.px(0.2), 2, colornames.White, true)
	})

	ecs.ForEach2(w, component.HealthComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *core.Health, t *component.Transform) {
		if ecs.Has(w, e, component.TargetTagComponent.Kind()) {
			return
		}
		v.drawActor(screen, w, e, h, t, debug)
	})

	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *core.Projectile) {
		x, y := v.ToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, 2, colornames.Yellow, true)
	})

	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.Effect, t *component.Transform) {
		x, y := v.ToScreen(t.Position)
		switch fx.Kind {
		case core.EffectMuzzleFlash:
			vector.DrawFilledCircle(screen, x, y, 4, colornames.Orange, true)
		default:
			vector.StrokeCircle(screen, x, y, 5, 1.5, colornames.White, true)
		}
	})
}

func (v *View) drawActor(screen *ebiten.Image, w *ecs.World, e ecs.Entity, h *core.Health, t *component.Transform, debug bool) {
	x, y := v.ToScreen(t.Position)
	r := v.px(0.4)

	fill := tintOf(w, e, colornames.Steelblue)
	if !h.IsAlive() {
		fill = colornames.Dimgray
	}
	vector.DrawFilledCircle(screen, x, y, r, fill, true)
	if h.IsInvulnerable() {
		vector.StrokeCircle(screen, x, y, r+3, 2, colornames.Cyan, true)
	}

	fx, fy := v.ToScreen(t.Position.Add(t.Forward().Mul(0.8)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, colornames.White, true)

	barW := 2 * r
	vector.DrawFilledRect(screen, x-r, y-r-8, barW, 4, colornames.Darkred, false)
	vector.DrawFilledRect(screen, x-r, y-r-8, barW*float32(h.Fraction()), 4, colornames.Limegreen, false)

	ai, ok := ecs.Get(w, e, component.AIComponent.Kind())
	if !ok {
		return
	}
	if debug {
		cfg := ai.Config()
		v.drawFOV(screen, t, cfg.Perception.DetectionRange, cfg.Perception.FieldOfView, ai.CanSeeTarget())
	}
	ebitenutil.DebugPrintAt(screen, ai.CurrentState().String(), int(x-r), int(y+r+2))
}

func (v *View) drawFOV(screen *ebiten.Image, t *component.Transform, rangeM, fovDeg float64, seen bool) {
	c := color.Color(colornames.Lightgray)
	if seen {
		c = colornames.Red
	}
	x, y := v.ToScreen(t.Position)
	half := mgl64.DegToRad(fovDeg / 2)
	for _, a := range []float64{-half, half} {
		dir := mgl64.QuatRotate(a, mgl64.Vec3{0, 1, 0}).Rotate(t.Forward())
		ex, ey := v.ToScreen(t.Position.Add(dir.Mul(rangeM)))
		vector.StrokeLine(screen, x, y, ex, ey, 1, c, true)
	}
}

func tintOf(w *ecs.World, e ecs.Entity, fallback color.Color) color.Color {
	if t, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok && t.Color != nil {
		return t.Color
	}
	return fallback
}
