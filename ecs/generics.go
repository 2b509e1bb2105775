package ecs

import "github.com/whiskerking/platformer/ecs/component"

// Add attaches v to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID(), true).Set(e, v)
	return nil
}

// Remove detaches the component of kind k from e.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() {
		return false
	}
	return w.store(k.ID(), false).Remove(e)
}

// Has reports whether e carries a component of kind k.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !IsAlive(w, e) {
		return false
	}
	return w.store(k.ID(), false).Has(e)
}

// Get returns the component of kind k attached to e.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(k.ID(), false).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// First returns any one live entity carrying kind k.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !k.Valid() {
		return 0, false
	}
	for _, e := range w.store(k.ID(), false).Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying kind k.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(e Entity, v *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s := w.store(k.ID(), false)
	// copy the dense list so fn may add or remove components while iterating
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both ka and kb.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || !ka.Valid() || !kb.Valid() || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	ents := append([]Entity(nil), sa.Entities()...)
	for _, e := range ents {
		if !IsAlive(w, e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits every live entity carrying ka, kb, and kc.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	if w == nil || !ka.Valid() || !kb.Valid() || !kc.Valid() || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	ents := append([]Entity(nil), sa.Entities()...)
	for _, e := range ents {
		if !IsAlive(w, e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		c, okC := sc.Get(e).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
