package system

import (
	"github.com/whiskerking/platformer/common"
	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
)

// swipeLifetimeFrames keeps a swipe visible for feedback consumers for a
// fifth of a second at the default step.
const swipeLifetimeFrames = 12

// AttackSystem consumes buffered attack presses and spawns a short-lived
// swipe entity carrying the press's directional context. When the press
// was buffered without a direction the player's facing stands in.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem {
	return &AttackSystem{}
}

func (s *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.InputBufferComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, buf *component.InputBuffer, m *component.Motion) {
		ctx, ok := buf.ConsumeContext(component.InputAttack, now)
		if !ok {
			return
		}
		dir := ctx.Normalized()
		if dir.Len() == 0 {
			dir = m.Facing
		}

		var origin common.Vec3
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			origin = tr.Position
		}

		swipe := ecs.CreateEntity(w)
		_ = ecs.Add(w, swipe, component.AttackSwipeComponent.Kind(), &component.AttackSwipe{
			Origin:    origin,
			Direction: dir,
			At:        now,
		})
		_ = ecs.Add(w, swipe, component.TTLComponent.Kind(), &component.TTL{Frames: swipeLifetimeFrames})
	})
}
