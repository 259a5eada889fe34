package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/vrarena/common"
	core "github.com/milk9111/vrarena/component"
	"github.com/milk9111/vrarena/ecs"
	"github.com/milk9111/vrarena/ecs/component"
)

// PlayerControllerSystem applies Input to player locomotion and the held weapon.
// Movement that would leave walkable space is dropped when a Grid is set.
type PlayerControllerSystem struct {
	Grid *core.NavGrid
	log  *zap.Logger
}

func NewPlayerControllerSystem(grid *core.NavGrid, log *zap.Logger) *PlayerControllerSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlayerControllerSystem{Grid: grid, log: log}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach3(w, component.InputComponent.Kind(), component.PlayerControllerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, in *component.Input, pc *component.PlayerController, t *component.Transform) {
		defer clearEdges(in)

		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.IsAlive() {
			return
		}

		if in.Turn != 0 {
			yaw := common.Yaw(t.Rotation) + in.Turn*pc.TurnSpeed*dt
			t.Rotation = common.YawRotation(yaw)
		}

		move := common.Flat(t.Forward().Mul(in.MoveZ).Add(t.Right().Mul(in.MoveX)))
		if l := move.Len(); l > 1 {
			move = move.Mul(1 / l)
		}
		if move.Len() > 0 {
			next := t.Position.Add(move.Mul(pc.MoveSpeed * dt))
			if s.Grid == nil || s.Grid.Walkable(next) {
				t.Position = next
			}
		}

		s.handleWeapon(w, e, in, t)
	})
}

func (s *PlayerControllerSystem) handleWeapon(w *ecs.World, e ecs.Entity, in *component.Input, t *component.Transform) {
	wp, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return
	}

	var mount component.WeaponMount
	if m, ok := ecs.Get(w, e, component.WeaponMountComponent.Kind()); ok {
		mount = *m
	}
	hand := in.Hand
	if hand == core.HandNone {
		hand = mount.Hand
	}
	if hand != core.HandNone {
		wp.Grab(hand)
		wp.SetTrigger(hand, in.Trigger)
	}

	socket, _ := ecs.Get(w, e, component.MagazineSocketComponent.Kind())
	if in.Eject {
		if socket != nil {
			socket.Eject()
		} else {
			wp.EjectMagazine()
		}
	}
	if in.Insert {
		if socket != nil {
			socket.Insert(&core.Magazine{Label: "spare"})
		} else {
			wp.InsertMagazine()
		}
	}
	if in.Reload {
		wp.StartReload()
	}

	if !in.Fire {
		return
	}
	res := wp.Shoot(mount.MuzzlePose(*t))
	if !res.Fired {
		s.log.Debug("player: shot blocked",
			zap.Stringer("entity", e),
			zap.Stringer("reason", res.Blocked),
		)
		return
	}
	w.Emit(ShotEventType, ShotEvent{Shooter: e, Result: res})
	s.log.Debug("player: shot",
		zap.Stringer("entity", e),
		zap.Bool("hit", res.Hit),
		zap.Stringer("surface", ecs.Entity(res.RayHit.Surface)),
		zap.Int("ammo", wp.CurrentAmmo()),
	)
}

func clearEdges(in *component.Input) {
	in.Fire = false
	in.Reload = false
	in.Eject = false
	in.Insert = false
}
