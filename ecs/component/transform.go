package component

import "github.com/whiskerking/platformer/common"

// Transform mirrors the mover's world position for rendering and debug
// output. The physics body is authoritative; the controller system writes
// this back after its move call.
type Transform struct {
	Position common.Vec3
}

var TransformComponent = NewComponent[Transform]()
