package component

import "github.com/whiskerking/platformer/physics"

// Body attaches the injected collision oracle to an entity. BaseHeight is
// the standing capsule height the slide restores on exit.
type Body struct {
	Mover      physics.Mover
	BaseHeight float64
}

var BodyComponent = NewComponent[Body]()
