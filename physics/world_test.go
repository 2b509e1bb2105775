package physics

import (
	"testing"

	"github.com/whiskerking/platformer/common"
)

func groundSlab() Box {
	return Box{Min: common.Vec3{X: -10, Y: -1, Z: -10}, Max: common.Vec3{X: 10, Y: 0, Z: 10}}
}

func TestAddBoxRejectsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want int
	}{
		{"valid", groundSlab(), 1},
		{"zero extent", Box{Min: common.Vec3{X: 1}, Max: common.Vec3{X: 1, Y: 1, Z: 1}}, 0},
		{"inverted", Box{Min: common.Vec3{X: 2, Y: 2, Z: 2}, Max: common.Vec3{X: 1, Y: 1, Z: 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			w.AddBox(tt.box)
			if got := len(w.Boxes()); got != tt.want {
				t.Errorf("boxes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCapsuleDefaults(t *testing.T) {
	w := NewWorld()
	c := w.NewCapsule(common.Vec3{}, 0, 0)
	if c.Radius() != 0.5 || c.Height() != 1.8 {
		t.Errorf("defaults = (%v, %v), want (0.5, 1.8)", c.Radius(), c.Height())
	}
}

func TestCapsuleRestsOnGround(t *testing.T) {
	w := NewWorld()
	w.AddBox(groundSlab())
	c := w.NewCapsule(common.Vec3{}, 0.4, 1.6)

	if !c.Grounded() {
		t.Error("capsule with feet on the slab should be grounded")
	}
	if c.Move(common.Vec3{Y: -0.5}) != true {
		t.Error("downward move onto the slab should report grounded")
	}
	if c.Position().Y != 0 {
		t.Errorf("feet clamped to %v, want 0", c.Position().Y)
	}
}

func TestCapsuleFallsAndLands(t *testing.T) {
	w := NewWorld()
	w.AddBox(groundSlab())
	c := w.NewCapsule(common.Vec3{Y: 3}, 0.4, 1.6)

	if c.Grounded() {
		t.Fatal("capsule in the air should not be grounded")
	}

	grounded := false
	for i := 0; i < 10 && !grounded; i++ {
		grounded = c.Move(common.Vec3{Y: -0.5})
	}
	if !grounded {
		t.Fatal("capsule never landed")
	}
	if c.Position().Y != 0 {
		t.Errorf("landed at %v, want 0", c.Position().Y)
	}
}

func TestCapsuleClampsAgainstWall(t *testing.T) {
	w := NewWorld()
	w.AddBox(groundSlab())
	w.AddBox(Box{Min: common.Vec3{X: 2, Y: 0, Z: -10}, Max: common.Vec3{X: 3, Y: 5, Z: 10}})
	c := w.NewCapsule(common.Vec3{}, 0.4, 1.6)

	for i := 0; i < 10; i++ {
		c.Move(common.Vec3{X: 0.5})
	}

	want := 2.0 - 0.4
	if c.Position().X != want {
		t.Errorf("stopped at X = %v, want %v", c.Position().X, want)
	}
	if !c.Grounded() {
		t.Error("sliding along a wall should keep ground contact")
	}
}

func TestCapsuleClampsAgainstCeiling(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Min: common.Vec3{X: -10, Y: 3, Z: -10}, Max: common.Vec3{X: 10, Y: 4, Z: 10}})
	c := w.NewCapsule(common.Vec3{}, 0.4, 1.6)

	for i := 0; i < 10; i++ {
		c.Move(common.Vec3{Y: 0.5})
	}

	want := 3.0 - 1.6
	if c.Position().Y != want {
		t.Errorf("head stopped at feet Y = %v, want %v", c.Position().Y, want)
	}
}

func TestCapsuleAxesResolveIndependently(t *testing.T) {
	w := NewWorld()
	w.AddBox(groundSlab())
	w.AddBox(Box{Min: common.Vec3{X: 2, Y: 0, Z: -10}, Max: common.Vec3{X: 3, Y: 5, Z: 10}})
	c := w.NewCapsule(common.Vec3{}, 0.4, 1.6)

	// blocked on X, free on Z: the Z component must survive
	for i := 0; i < 10; i++ {
		c.Move(common.Vec3{X: 0.5, Z: 0.25})
	}

	if c.Position().X != 1.6 {
		t.Errorf("X = %v, want clamped 1.6", c.Position().X)
	}
	if c.Position().Z != 2.5 {
		t.Errorf("Z = %v, want unobstructed 2.5", c.Position().Z)
	}
}

func TestCapsuleFreeFlightWithoutWorld(t *testing.T) {
	var w *World
	c := &Capsule{world: w, pos: common.Vec3{}, radius: 0.4, height: 1.6}

	c.Move(common.Vec3{X: 1, Y: 2, Z: 3})
	if c.Position() != (common.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("position = %v, want the raw delta applied", c.Position())
	}
	if c.Grounded() {
		t.Error("worldless capsule can never be grounded")
	}
}

func TestCapsuleResize(t *testing.T) {
	w := NewWorld()
	c := w.NewCapsule(common.Vec3{}, 0.4, 1.6)

	c.Resize(0.8)
	if c.Height() != 0.8 {
		t.Errorf("height = %v, want 0.8", c.Height())
	}
	c.Resize(-1)
	if c.Height() != 0.8 {
		t.Errorf("height after invalid resize = %v, want 0.8", c.Height())
	}
}

func TestGroundedProbeEdges(t *testing.T) {
	w := NewWorld()
	w.AddBox(groundSlab())

	tests := []struct {
		name string
		pos  common.Vec3
		want bool
	}{
		{"resting on top", common.Vec3{Y: 0}, true},
		{"within the skin", common.Vec3{Y: 0.04}, true},
		{"above the skin", common.Vec3{Y: 0.06}, false},
		{"off the edge", common.Vec3{X: 11, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := w.NewCapsule(tt.pos, 0.4, 1.6)
			if got := c.Grounded(); got != tt.want {
				t.Errorf("Grounded at %v = %t, want %t", tt.pos, got, tt.want)
			}
		})
	}
}
