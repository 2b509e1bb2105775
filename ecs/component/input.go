package component

import "github.com/whiskerking/platformer/common"

// Input stores per-tick raw input state for an entity. Continuous values
// (movement, held buttons) are read directly by systems; discrete press
// edges are forwarded into the InputBuffer and consumed from there.
type Input struct {
	Move common.Vec2 // analog movement on the XZ plane, magnitude <= 1
	Jump bool        // jump held this tick (variable jump height)

	JumpPressed    bool
	SlidePressed   bool
	AttackPressed  bool
	PausePressed   bool
	RestartPressed bool

	Aim common.Vec2 // directional context for attacks
}

var InputComponent = NewComponent[Input]()
