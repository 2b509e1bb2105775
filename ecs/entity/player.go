package entity

import (
	"fmt"

	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
	"github.com/whiskerking/platformer/physics"
	"github.com/whiskerking/platformer/prefabs"
)

// NewPlayer assembles the player entity from its prefab spec, placing its
// capsule at spawn in the given collision world.
func NewPlayer(w *ecs.World, pw *physics.World, spec *prefabs.PlayerSpec, spawn component.SpawnPoint) (ecs.Entity, error) {
	if w == nil || pw == nil || spec == nil {
		return 0, fmt.Errorf("player: nil world or spec")
	}

	tuning := spec.Tuning()
	if err := tuning.Validate(); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	capsule := pw.NewCapsule(spawn.Position, spec.Capsule.Radius, spec.Capsule.Height)

	e := ecs.CreateEntity(w)

	motion := &component.Motion{}
	motion.Reset(w.Now())

	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), &tuning),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.InputBufferComponent.Kind(), component.NewInputBuffer(spec.BufferWindow, spec.MaxBufferedPerKind, spec.PriorityOrder)),
		ecs.Add(w, e, component.MotionComponent.Kind(), motion),
		ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Mover: capsule, BaseHeight: capsule.Height()}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: capsule.Position()}),
		ecs.Add(w, e, component.BounceReportComponent.Kind(), &component.BounceReport{}),
		ecs.Add(w, e, component.SpawnPointComponent.Kind(), &spawn),
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("player: assemble: %w", err)
		}
	}

	return e, nil
}
