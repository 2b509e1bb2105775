package physics

import "github.com/whiskerking/platformer/common"

// groundSkin is the probe depth under the capsule feet that still counts
// as resting contact.
const groundSkin = 0.05

// Box is a static axis-aligned collision volume.
type Box struct {
	Min, Max common.Vec3
}

// World is a static collection of boxes capsules move through. Movement is
// resolved one axis at a time against every overlapping box, the same way
// the classic tile sweep resolves X and Y separately; grounded state comes
// from a thin probe under the feet rather than from velocity.
type World struct {
	boxes []Box
}

func NewWorld() *World {
	return &World{}
}

// AddBox registers a static collision volume. Degenerate boxes are ignored.
func (w *World) AddBox(b Box) {
	if w == nil {
		return
	}
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z {
		return
	}
	w.boxes = append(w.boxes, b)
}

// Boxes returns the registered volumes, for debug rendering.
func (w *World) Boxes() []Box {
	if w == nil {
		return nil
	}
	return w.boxes
}

// Capsule is a kinematic character volume, approximated by its bounding
// box. Position is the feet center.
type Capsule struct {
	world  *World
	pos    common.Vec3
	radius float64
	height float64
}

// NewCapsule places a capsule in the world with feet at pos.
func (w *World) NewCapsule(pos common.Vec3, radius, height float64) *Capsule {
	if radius <= 0 {
		radius = 0.5
	}
	if height <= 0 {
		height = 1.8
	}
	return &Capsule{world: w, pos: pos, radius: radius, height: height}
}

func (c *Capsule) Position() common.Vec3 {
	if c == nil {
		return common.Vec3{}
	}
	return c.pos
}

func (c *Capsule) SetPosition(pos common.Vec3) {
	if c == nil {
		return
	}
	c.pos = pos
}

func (c *Capsule) Resize(height float64) {
	if c == nil || height <= 0 {
		return
	}
	c.height = height
}

func (c *Capsule) Height() float64 {
	if c == nil {
		return 0
	}
	return c.height
}

// Radius returns the capsule radius.
func (c *Capsule) Radius() float64 {
	if c == nil {
		return 0
	}
	return c.radius
}

func (c *Capsule) overlaps(pos common.Vec3, b Box) bool {
	return pos.X-c.radius < b.Max.X && pos.X+c.radius > b.Min.X &&
		pos.Y < b.Max.Y && pos.Y+c.height > b.Min.Y &&
		pos.Z-c.radius < b.Max.Z && pos.Z+c.radius > b.Min.Z
}

// Move displaces the capsule axis by axis, clamping against every box it
// would enter, then reports resting contact from a thin probe under the
// feet.
func (c *Capsule) Move(delta common.Vec3) bool {
	if c == nil {
		return false
	}
	if c.world != nil {
		c.moveAxisX(delta.X)
		c.moveAxisZ(delta.Z)
		c.moveAxisY(delta.Y)
	} else {
		c.pos = c.pos.Add(delta)
	}
	return c.Grounded()
}

func (c *Capsule) moveAxisX(dx float64) {
	if dx == 0 {
		return
	}
	next := c.pos
	next.X += dx
	for _, b := range c.world.boxes {
		if !c.overlaps(next, b) {
			continue
		}
		if dx > 0 {
			next.X = b.Min.X - c.radius
		} else {
			next.X = b.Max.X + c.radius
		}
	}
	c.pos = next
}

func (c *Capsule) moveAxisZ(dz float64) {
	if dz == 0 {
		return
	}
	next := c.pos
	next.Z += dz
	for _, b := range c.world.boxes {
		if !c.overlaps(next, b) {
			continue
		}
		if dz > 0 {
			next.Z = b.Min.Z - c.radius
		} else {
			next.Z = b.Max.Z + c.radius
		}
	}
	c.pos = next
}

func (c *Capsule) moveAxisY(dy float64) {
	if dy == 0 {
		return
	}
	next := c.pos
	next.Y += dy
	for _, b := range c.world.boxes {
		if !c.overlaps(next, b) {
			continue
		}
		if dy > 0 {
			next.Y = b.Min.Y - c.height
		} else {
			next.Y = b.Max.Y
		}
	}
	c.pos = next
}

// Grounded reports whether a surface lies within groundSkin below the feet.
func (c *Capsule) Grounded() bool {
	if c == nil || c.world == nil {
		return false
	}
	for _, b := range c.world.boxes {
		if c.pos.X-c.radius < b.Max.X && c.pos.X+c.radius > b.Min.X &&
			c.pos.Z-c.radius < b.Max.Z && c.pos.Z+c.radius > b.Min.Z &&
			c.pos.Y-groundSkin < b.Max.Y && c.pos.Y >= b.Max.Y-groundSkin &&
			c.pos.Y+c.height > b.Min.Y {
			return true
		}
	}
	return false
}
