package component

import core "github.com/milk9111/vrarena/component"

// Input stores per-tick player intent. Edge fields (Fire, Reload, Eject, Insert, Start) are cleared by the system that consumes them.
type Input struct {
	MoveX   float64
	MoveZ   float64
	Turn    float64
	Trigger float64
	Hand    core.Hand

	Fire   bool
	Reload bool
	Eject  bool
	Insert bool
	Start  bool
}

var InputComponent = NewComponent[Input]()

// PlayerController tunes keyboard-driven locomotion.
type PlayerController struct {
	MoveSpeed float64
	TurnSpeed float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
