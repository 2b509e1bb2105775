package prefabs

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/whiskerking/platformer/common"
	"github.com/whiskerking/platformer/ecs/component"
	"github.com/whiskerking/platformer/physics"
)

// LoadSpec reads and unmarshals one yaml prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the flat tuning record for the player, one yaml key per
// constant the simulation consumes.
type PlayerSpec struct {
	Name string `yaml:"name"`

	RunSpeed   float64 `yaml:"run_speed"`
	SlideSpeed float64 `yaml:"slide_speed"`
	AirControl float64 `yaml:"air_control"`

	JumpHeight       float64 `yaml:"jump_height"`
	JumpHeightHold   float64 `yaml:"jump_height_hold"`
	DoubleJumpHeight float64 `yaml:"double_jump_height"`

	Gravity          float64 `yaml:"gravity"`
	PounceGravity    float64 `yaml:"pounce_gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	GroundStick      float64 `yaml:"ground_stick"`

	BounceThreshold      float64 `yaml:"bounce_threshold"`
	BounceDamping        float64 `yaml:"bounce_damping"`
	BounceMinRebound     float64 `yaml:"bounce_min_rebound"`
	BounceReferenceSpeed float64 `yaml:"bounce_reference_speed"`

	CoyoteTime         float64 `yaml:"coyote_time"`
	BufferWindow       float64 `yaml:"buffer_window"`
	MaxBufferedPerKind int     `yaml:"max_buffered_per_kind"`
	PriorityOrder      bool    `yaml:"priority_order"`

	SlideMinCancelTime float64 `yaml:"slide_min_cancel_time"`
	SlideDuration      float64 `yaml:"slide_duration"`
	SlideImpulse       float64 `yaml:"slide_impulse"`

	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
	GroundAccel    float64 `yaml:"ground_accel"`
	DeadZone       float64 `yaml:"dead_zone"`

	Capsule CapsuleSpec `yaml:"capsule"`
}

type CapsuleSpec struct {
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// LoadPlayerSpec reads player.yaml and validates its timing windows.
func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	tuning := spec.Tuning()
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// Tuning converts the spec into the component record the simulation reads.
func (s *PlayerSpec) Tuning() component.Player {
	if s == nil {
		return component.Player{}
	}
	return component.Player{
		RunSpeed:             s.RunSpeed,
		SlideSpeed:           s.SlideSpeed,
		AirControl:           s.AirControl,
		JumpHeight:           s.JumpHeight,
		JumpHeightHold:       s.JumpHeightHold,
		DoubleJumpHeight:     s.DoubleJumpHeight,
		Gravity:              s.Gravity,
		PounceGravity:        s.PounceGravity,
		TerminalVelocity:     s.TerminalVelocity,
		GroundStick:          s.GroundStick,
		BounceThreshold:      s.BounceThreshold,
		BounceDamping:        s.BounceDamping,
		BounceMinRebound:     s.BounceMinRebound,
		BounceReferenceSpeed: s.BounceReferenceSpeed,
		CoyoteTime:           s.CoyoteTime,
		SlideMinCancelTime:   s.SlideMinCancelTime,
		SlideDuration:        s.SlideDuration,
		SlideImpulse:         s.SlideImpulse,
		GroundFriction:       s.GroundFriction,
		AirFriction:          s.AirFriction,
		GroundAccel:          s.GroundAccel,
		DeadZone:             s.DeadZone,
	}
}

// ArenaSpec describes the static collision boxes and the spawn point.
type ArenaSpec struct {
	Name  string    `yaml:"name"`
	Spawn VecSpec   `yaml:"spawn"`
	Boxes []BoxSpec `yaml:"boxes"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v VecSpec) Vec3() common.Vec3 {
	return common.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

type BoxSpec struct {
	Min VecSpec `yaml:"min"`
	Max VecSpec `yaml:"max"`
}

func (b BoxSpec) Box() physics.Box {
	return physics.Box{Min: b.Min.Vec3(), Max: b.Max.Vec3()}
}

// LoadArenaSpec reads an arena prefab by name (basename, .yaml optional).
func LoadArenaSpec(name string) (*ArenaSpec, error) {
	if name == "" {
		name = "arena"
	}
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}
	spec, err := LoadSpec[ArenaSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
