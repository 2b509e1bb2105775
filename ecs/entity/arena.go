package entity

import (
	"fmt"

	"github.com/whiskerking/platformer/ecs/component"
	"github.com/whiskerking/platformer/physics"
	"github.com/whiskerking/platformer/prefabs"
)

// BuildArena populates a collision world from an arena prefab and returns
// the spawn point.
func BuildArena(pw *physics.World, spec *prefabs.ArenaSpec) (component.SpawnPoint, error) {
	if pw == nil || spec == nil {
		return component.SpawnPoint{}, fmt.Errorf("arena: nil world or spec")
	}
	for _, b := range spec.Boxes {
		pw.AddBox(b.Box())
	}
	return component.SpawnPoint{Position: spec.Spawn.Vec3()}, nil
}
