package system

import (
	"github.com/whiskerking/platformer/common"
	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
)

// InputBufferSystem runs the buffer's once-per-tick maintenance and turns
// raw press edges into buffered entries. Presses may arrive faster than
// the simulation consumes them; the buffer absorbs the misalignment.
//
// Pause is buffered Critical and Restart High so they outlive and outrank
// mashed movement presses in the same window.
type InputBufferSystem struct{}

func NewInputBufferSystem() *InputBufferSystem {
	return &InputBufferSystem{}
}

func (s *InputBufferSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()

	ecs.ForEach2(w, component.InputComponent.Kind(), component.InputBufferComponent.Kind(), func(e ecs.Entity, in *component.Input, buf *component.InputBuffer) {
		buf.Purge(now)

		if in.JumpPressed {
			buf.Buffer(component.InputJump, component.PriorityNormal, common.Vec2{}, now)
		}
		if in.SlidePressed {
			buf.Buffer(component.InputSlide, component.PriorityNormal, in.Move, now)
		}
		if in.AttackPressed {
			buf.Buffer(component.InputAttack, component.PriorityNormal, in.Aim, now)
		}
		if in.PausePressed {
			buf.Buffer(component.InputPause, component.PriorityCritical, common.Vec2{}, now)
		}
		if in.RestartPressed {
			buf.Buffer(component.InputRestart, component.PriorityHigh, common.Vec2{}, now)
		}
	})
}
