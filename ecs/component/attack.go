package component

import "github.com/whiskerking/platformer/common"

// AttackSwipe is a transient entity spawned when a buffered attack input
// is consumed. It carries the directional context the press was buffered
// with; feedback systems read it until the TTL destroys the entity.
type AttackSwipe struct {
	Origin    common.Vec3
	Direction common.Vec2
	At        float64
}

var AttackSwipeComponent = NewComponent[AttackSwipe]()
