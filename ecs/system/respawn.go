package system

import (
	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
)

// RespawnSystem performs pending player resets. A buffered Restart press
// becomes a RespawnRequest; processing one restores the post-reset state
// wholesale: at rest and grounded at the spawn point, jump and slide flags
// cleared, capsule restored, input buffer emptied.
//
// It runs after the controller so a reset isn't half-overwritten by the
// same tick's movement.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputBufferComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, buf *component.InputBuffer) {
		if buf.Consume(component.InputRestart, now) {
			_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
		}
	})

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		defer ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}

		if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
			m.Reset(now)
		}
		if buf, ok := ecs.Get(w, e, component.InputBufferComponent.Kind()); ok {
			buf.Clear()
		}

		body, bok := ecs.Get(w, e, component.BodyComponent.Kind())
		if bok && body.Mover != nil {
			if body.BaseHeight > 0 {
				body.Mover.Resize(body.BaseHeight)
			}
			if spawn, ok := ecs.Get(w, e, component.SpawnPointComponent.Kind()); ok {
				body.Mover.SetPosition(spawn.Position)
			}
			if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				tr.Position = body.Mover.Position()
			}
		}
	})
}
