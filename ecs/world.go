package ecs

import "github.com/whiskerking/platformer/ecs/component"

// DefaultDT is the fixed simulation step (60 Hz).
const DefaultDT = 1.0 / 60.0

// System updates a world once per simulation tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, system order, and the simulation
// clock. It is single-threaded: systems run in registration order, exactly
// once per tick.
type World struct {
	nextID entityID
	gens   []generation
	free   []entityID

	stores  map[component.ComponentID]*SparseSet
	systems []System

	tick uint64
	now  float64
	dt   float64
}

// NewWorld creates an empty world with the default fixed step.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		dt:     DefaultDT,
	}
}

// SetDT overrides the fixed step. Zero or negative values are ignored.
func (w *World) SetDT(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.dt = dt
}

// DT returns the fixed simulation step in seconds.
func (w *World) DT() float64 {
	if w == nil {
		return DefaultDT
	}
	return w.dt
}

// Now returns the simulation time in seconds at the start of the current
// tick.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

// Tick returns the number of completed simulation ticks.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then advances the clock.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.tick++
	w.now += w.dt
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) aliveByID(id entityID) bool {
	if w == nil || id == 0 || int(id) > len(w.gens) {
		return false
	}
	for _, f := range w.free {
		if f == id {
			return false
		}
	}
	return true
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.nextID++
		id = w.nextID
		w.gens = append(w.gens, 0)
	}
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes an entity and all of its components. It returns
// false for handles that are already dead or stale.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.gens[e.id()-1]++
	w.free = append(w.free, e.id())
	return true
}

// IsAlive reports whether an entity handle is current.
func IsAlive(w *World, e Entity) bool {
	if w == nil || e.id() == 0 || int(e.id()) > len(w.gens) {
		return false
	}
	return w.gens[e.id()-1] == e.generation()
}

// Entities returns all live entity handles.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, int(w.nextID))
	for id := entityID(1); id <= w.nextID; id++ {
		if w.aliveByID(id) {
			out = append(out, makeEntity(id, w.gens[id-1]))
		}
	}
	return out
}
