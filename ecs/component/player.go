package component

import (
	"fmt"
	"math"
)

// Player holds the movement tuning constants for one player entity. The
// record is filled once from prefabs/player.yaml and treated as read-only
// by the simulation; only the debug shell's hot-reload path replaces it.
type Player struct {
	RunSpeed   float64 // m/s on the ground
	SlideSpeed float64 // m/s while sliding
	AirControl float64 // fraction of run speed available airborne

	JumpHeight       float64 // apex of an early-released jump, meters
	JumpHeightHold   float64 // apex of a fully held jump, meters
	DoubleJumpHeight float64 // independent tunable, not derived from JumpHeight

	Gravity          float64 // m/s^2, negative
	PounceGravity    float64 // configured but not applied; see prefabs/player.yaml
	TerminalVelocity float64 // most negative vertical speed, m/s
	GroundStick      float64 // residual downward speed while grounded, m/s

	BounceThreshold      float64 // impacts below this speed rebound, m/s
	BounceDamping        float64 // fraction of impact speed kept on rebound
	BounceMinRebound     float64 // rebounds slower than this are absorbed, m/s
	BounceReferenceSpeed float64 // impact speed mapping to intensity 1.0

	CoyoteTime         float64 // seconds a jump stays grounded after leaving a ledge
	SlideMinCancelTime float64 // seconds before a slide may be interrupted
	SlideDuration      float64 // seconds before a slide force-ends
	SlideImpulse       float64 // fraction of slide speed added on slide entry

	GroundFriction float64 // deceleration sharpness on the ground
	AirFriction    float64 // deceleration sharpness in the air
	GroundAccel    float64 // acceleration sharpness toward target velocity
	DeadZone       float64 // analog magnitude below which input reads as idle
}

var PlayerComponent = NewComponent[Player]()

// JumpSpeed solves the takeoff speed for a jump apex analytically instead
// of integrating: v = sqrt(2*|g|*h).
func (p *Player) JumpSpeed(height float64) float64 {
	if p == nil || height <= 0 {
		return 0
	}
	return math.Sqrt(2 * math.Abs(p.Gravity) * height)
}

// JumpCutFactor is the one-shot multiplier applied to upward velocity when
// the jump button is released while ascending.
func (p *Player) JumpCutFactor() float64 {
	if p == nil || p.JumpHeightHold <= 0 {
		return 1
	}
	f := math.Sqrt(p.JumpHeight / p.JumpHeightHold)
	if f < 0.6 {
		return 0.6
	}
	if f > 1 {
		return 1
	}
	return f
}

// Validate rejects tuning a session cannot run with. Timing windows must be
// positive; everything else is a taste constant the simulation tolerates.
func (p *Player) Validate() error {
	if p == nil {
		return fmt.Errorf("player: nil tuning")
	}
	checks := []struct {
		name  string
		value float64
	}{
		{"coyote_time", p.CoyoteTime},
		{"slide_min_cancel_time", p.SlideMinCancelTime},
		{"slide_duration", p.SlideDuration},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("player: %s must be positive, got %v", c.name, c.value)
		}
	}
	if p.SlideMinCancelTime > p.SlideDuration {
		return fmt.Errorf("player: slide_min_cancel_time %v exceeds slide_duration %v", p.SlideMinCancelTime, p.SlideDuration)
	}
	if p.Gravity >= 0 {
		return fmt.Errorf("player: gravity must be negative, got %v", p.Gravity)
	}
	return nil
}
