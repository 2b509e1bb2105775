// Package physics supplies the collision oracle the player controller
// moves against: displace a capsule through a world of static boxes and
// report whether it rests on a surface afterwards. The controller never
// inspects geometry; this contract is its whole view of collision.
package physics

import "github.com/whiskerking/platformer/common"

// Mover moves a character capsule by world-space deltas. Implementations
// resolve penetration themselves; the single bool is the ground truth the
// simulation re-derives its state from each tick.
type Mover interface {
	// Move displaces the capsule by delta, resolving collisions, and
	// reports whether the capsule is resting on a surface after the move.
	Move(delta common.Vec3) bool
	// Position returns the capsule's feet center.
	Position() common.Vec3
	// SetPosition teleports the capsule, keeping feet planted at pos.
	SetPosition(pos common.Vec3)
	// Resize changes the capsule height in place, feet staying planted.
	// Used by the slide to duck under geometry.
	Resize(height float64)
	// Height returns the current capsule height.
	Height() float64
}
