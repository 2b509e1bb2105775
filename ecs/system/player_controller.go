package system

import (
	"github.com/whiskerking/platformer/common"
	"github.com/whiskerking/platformer/ecs"
	"github.com/whiskerking/platformer/ecs/component"
)

// PlayerControllerSystem turns buffered and continuous input into a
// velocity and one mover call per tick. The step order inside the tick is
// load-bearing: ground refresh, then coyote bookkeeping, then jump, then
// slide, then horizontal integration, then gravity, then the move call.
// Evaluating coyote time after the move call would let a fresh landing
// masquerade as a grace-window jump.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	dt := w.DT()

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.MotionComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, m *component.Motion, body *component.Body) {
		pl, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			return
		}
		in, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			return
		}
		buf, ok := ecs.Get(w, e, component.InputBufferComponent.Kind())
		if !ok || body.Mover == nil {
			return
		}

		s.refreshGroundState(w, e, now, pl, m)
		jumped := s.resolveJump(now, dt, pl, in, buf, m, body)
		s.resolveSlide(now, pl, in, buf, m, body)
		s.integrateHorizontal(dt, pl, in, m)
		if !jumped {
			// the takeoff tick keeps the full analytic speed; gravity
			// integrates from the next tick
			s.applyGravity(dt, pl, m)
		}

		if in.Move.Len() > pl.DeadZone {
			m.Facing = in.Move.Normalized()
		}

		// the single point where velocity becomes movement and ground
		// truth is re-derived for the next tick
		m.WasGrounded = m.Grounded
		m.Grounded = body.Mover.Move(m.Velocity.Scale(dt))

		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			tr.Position = body.Mover.Position()
		}
	})
}

// refreshGroundState resolves the airborne->grounded transition reported
// by the previous tick's move call, then records grounded time for the
// coyote window.
func (s *PlayerControllerSystem) refreshGroundState(w *ecs.World, e ecs.Entity, now float64, pl *component.Player, m *component.Motion) {
	if m.Grounded {
		if !m.WasGrounded {
			s.onLanded(w, e, now, pl, m)
		}
		m.LastGroundedTime = now
	}
}

// onLanded restores jump availability and converts leftover impact speed
// into either a damped rebound or a fully absorbed stop.
func (s *PlayerControllerSystem) onLanded(w *ecs.World, e ecs.Entity, now float64, pl *component.Player, m *component.Motion) {
	m.CanDoubleJump = true
	m.HasUsedDoubleJump = false
	// a rebound ascent is not a jump; the cutoff must not shorten it
	m.JumpCutApplied = true

	impact := m.Velocity.Y
	if impact >= 0 {
		return
	}

	if impact < pl.BounceThreshold {
		rebound := -impact * pl.BounceDamping
		if rebound < pl.BounceMinRebound {
			rebound = 0
		}
		m.Velocity.Y = rebound
		if rebound > 0 {
			s.recordBounce(w, e, now, pl, impact)
		}
		return
	}
	m.Velocity.Y = 0
}

func (s *PlayerControllerSystem) recordBounce(w *ecs.World, e ecs.Entity, now float64, pl *component.Player, impact float64) {
	rep, ok := ecs.Get(w, e, component.BounceReportComponent.Kind())
	if !ok {
		return
	}
	ref := pl.BounceReferenceSpeed
	if ref <= 0 {
		ref = 20
	}
	rep.Intensity = common.Clamp(-impact/ref, 0, 1)
	rep.At = now
	rep.Count++
}

// resolveJump consumes a buffered jump when one is actionable. Coyote-time
// jumps win over double jumps so a forgiving ledge jump never spends the
// double jump. A non-actionable press stays buffered until it expires.
func (s *PlayerControllerSystem) resolveJump(now, dt float64, pl *component.Player, in *component.Input, buf *component.InputBuffer, m *component.Motion, body *component.Body) bool {
	// an uncancelable slide locks out every interrupt, jumps included
	slideLocked := m.Sliding && now-m.SlideStart < pl.SlideMinCancelTime

	jumped := false
	if buf.Has(component.InputJump, now) && !slideLocked {
		switch {
		case m.Grounded || m.CoyoteActive(now, pl.CoyoteTime):
			buf.Consume(component.InputJump, now)
			m.Velocity.Y = pl.JumpSpeed(pl.JumpHeight)
			m.Grounded = false
			// back-date so the same ledge can't grant a second coyote jump
			m.LastGroundedTime = now - pl.CoyoteTime - dt
			m.CanDoubleJump = true
			m.HasUsedDoubleJump = false
			m.JumpCutApplied = false
			jumped = true
			if m.Sliding {
				s.endSlide(m, body)
			}
		case m.CanDoubleJump && !m.HasUsedDoubleJump:
			buf.Consume(component.InputJump, now)
			m.Velocity.Y = pl.JumpSpeed(pl.DoubleJumpHeight)
			m.HasUsedDoubleJump = true
			m.CanDoubleJump = false
			m.JumpCutApplied = false
			jumped = true
		}
	}

	// variable jump height: releasing the button while ascending shortens
	// the arc, once per jump; gravity finishes it from there
	if !m.Grounded && m.Velocity.Y > 0 && !in.Jump && !m.JumpCutApplied {
		m.Velocity.Y *= pl.JumpCutFactor()
		m.JumpCutApplied = true
	}
	return jumped
}

// resolveSlide advances an active slide and starts a new one from a
// buffered press. Slides are grounded-only; the capsule ducks to half
// height for the duration.
func (s *PlayerControllerSystem) resolveSlide(now float64, pl *component.Player, in *component.Input, buf *component.InputBuffer, m *component.Motion, body *component.Body) {
	moveMag := in.Move.Len()

	if m.Sliding {
		elapsed := now - m.SlideStart
		if !m.CanCancelSlide && elapsed >= pl.SlideMinCancelTime {
			m.CanCancelSlide = true
		}

		cancel := false
		if m.CanCancelSlide {
			switch {
			case buf.Has(component.InputJump, now):
				cancel = true
			case moveMag < pl.DeadZone:
				cancel = true
			case !m.Grounded:
				cancel = true
			case in.Move.Normalized().Dot(m.SlideDir) < 0.5:
				// steered more than ~60 degrees off the slide line
				cancel = true
			}
		}

		if cancel || elapsed >= pl.SlideDuration {
			s.endSlide(m, body)
		}
		return
	}

	if !buf.Has(component.InputSlide, now) {
		return
	}
	if !m.Grounded || moveMag <= pl.DeadZone {
		// not actionable this tick; the press stays buffered
		return
	}

	buf.Consume(component.InputSlide, now)
	m.Sliding = true
	m.SlideStart = now
	m.CanCancelSlide = false
	m.SlideDir = in.Move.Normalized()

	if body.BaseHeight > 0 {
		body.Mover.Resize(body.BaseHeight / 2)
	}
	if pl.SlideImpulse > 0 {
		impulse := m.SlideDir.Scale(pl.SlideSpeed * pl.SlideImpulse)
		m.Velocity = m.Velocity.WithHorizontal(m.Velocity.Horizontal().Add(impulse))
	}
}

func (s *PlayerControllerSystem) endSlide(m *component.Motion, body *component.Body) {
	m.Sliding = false
	m.CanCancelSlide = false
	if body.BaseHeight > 0 {
		body.Mover.Resize(body.BaseHeight)
	}
}

// integrateHorizontal smooths the XZ velocity toward the input target.
// Four rates fall out of the grounded/airborne x accel/decel split:
// stopping on the ground is snappy, stopping in the air is floaty, and
// air acceleration is limited by air control.
func (s *PlayerControllerSystem) integrateHorizontal(dt float64, pl *component.Player, in *component.Input, m *component.Motion) {
	maxSpeed := pl.RunSpeed
	dir := in.Move.Normalized()
	if m.Sliding {
		maxSpeed = pl.SlideSpeed
		dir = m.SlideDir
	}
	if !m.Grounded {
		maxSpeed *= pl.AirControl
	}

	mag := common.Clamp(in.Move.Len(), 0, 1)
	if m.Sliding {
		mag = 1
	}
	target := common.Clamp(maxSpeed*mag, 0, pl.SlideSpeed*1.2)

	h := m.Velocity.Horizontal()
	if target < pl.DeadZone {
		// decelerating: exponential-style ease toward rest
		rate := pl.GroundFriction
		if !m.Grounded {
			rate = pl.AirFriction
		}
		t := common.Clamp(rate*dt, 0, 1)
		h.X = common.Lerp(h.X, 0, t)
		h.Y = common.Lerp(h.Y, 0, t)
	} else {
		// accelerating: clamped step toward the target velocity
		accel := pl.RunSpeed * pl.GroundAccel
		if !m.Grounded {
			accel *= pl.AirControl
		}
		want := dir.Scale(target)
		h.X = common.MoveTowards(h.X, want.X, accel*dt)
		h.Y = common.MoveTowards(h.Y, want.Y, accel*dt)
	}
	m.Velocity = m.Velocity.WithHorizontal(h)
}

// applyGravity integrates vertical speed with a terminal clamp, or keeps
// the capsule seated with a small constant push while grounded.
func (s *PlayerControllerSystem) applyGravity(dt float64, pl *component.Player, m *component.Motion) {
	if !m.Grounded {
		m.Velocity.Y += pl.Gravity * dt
		if m.Velocity.Y < pl.TerminalVelocity {
			m.Velocity.Y = pl.TerminalVelocity
		}
		return
	}
	if m.Velocity.Y < 0 {
		m.Velocity.Y = pl.GroundStick
	}
}
