package main

import (
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/vrarena/ecs/component"
)

const stickDeadzone = 0.3

// Input maps keyboard and the first gamepad onto the player's intent.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Update polls devices and writes this frame's intent into in. Edge fields are
// only ever set here; the player controller clears them.
func (i *Input) Update(in *component.Input) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX, moveZ, turn float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		moveZ++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		moveZ--
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		moveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		moveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		turn--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		turn++
	}

	trigger := 0.0
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		trigger = 1
	}
	fire := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	reload := inpututil.IsKeyJustPressed(ebiten.KeyR)
	eject := inpututil.IsKeyJustPressed(ebiten.KeyE)
	insert := inpututil.IsKeyJustPressed(ebiten.KeyI)
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]

		if v := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal); math.Abs(v) > stickDeadzone {
			moveX = v
		}
		// Stick up is negative.
		if v := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical); math.Abs(v) > stickDeadzone {
			moveZ = -v
		}
		if v := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal); math.Abs(v) > stickDeadzone {
			turn = v
		}

		if v := ebiten.StandardGamepadButtonValue(gid, ebiten.StandardGamepadButtonFrontBottomRight); v > trigger {
			trigger = v
		}
		fire = fire || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
		reload = reload || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		eject = eject || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightTop)
		insert = insert || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
		start = start || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	in.MoveX = moveX
	in.MoveZ = moveZ
	in.Turn = turn
	in.Trigger = trigger
	in.Fire = in.Fire || fire
	in.Reload = in.Reload || reload
	in.Eject = in.Eject || eject
	in.Insert = in.Insert || insert
	in.Start = in.Start || start
}
