package component

import "github.com/whiskerking/platformer/common"

// Motion is the player's continuous simulation state, owned and mutated by
// the controller system every tick.
type Motion struct {
	Velocity common.Vec3

	Grounded         bool
	WasGrounded      bool
	LastGroundedTime float64

	CanDoubleJump     bool
	HasUsedDoubleJump bool
	JumpCutApplied    bool

	Sliding        bool
	SlideStart     float64
	SlideDir       common.Vec2
	CanCancelSlide bool

	Facing common.Vec2 // last non-idle movement direction, unit length
}

var MotionComponent = NewComponent[Motion]()

// Reset restores the post-respawn state: at rest, grounded, all jump and
// slide flags cleared.
func (m *Motion) Reset(now float64) {
	if m == nil {
		return
	}
	*m = Motion{
		Grounded:         true,
		WasGrounded:      true,
		LastGroundedTime: now,
		CanDoubleJump:    true,
		Facing:           common.Vec2{X: 1},
	}
}

// StateName names the current movement state for debug output and
// scenario scripts.
func (m *Motion) StateName() string {
	switch {
	case m == nil:
		return "idle"
	case m.Sliding:
		return "slide"
	case !m.Grounded && m.Velocity.Y > 0:
		return "jump"
	case !m.Grounded:
		return "fall"
	case m.Velocity.Horizontal().Len() > 0.1:
		return "run"
	}
	return "idle"
}

// CoyoteActive reports whether a jump this tick is still treated as
// grounded: within the grace window after the last grounded tick.
func (m *Motion) CoyoteActive(now, coyoteTime float64) bool {
	if m == nil || m.Grounded {
		return false
	}
	return now-m.LastGroundedTime <= coyoteTime
}
