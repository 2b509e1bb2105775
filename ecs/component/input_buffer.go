package component

import (
	"math"

	"github.com/whiskerking/platformer/common"
)

// InputKind identifies a bufferable discrete input.
type InputKind uint8

const (
	InputJump InputKind = iota
	InputSlide
	InputAttack
	InputPause
	InputRestart

	inputKindCount
)

func (k InputKind) String() string {
	switch k {
	case InputJump:
		return "jump"
	case InputSlide:
		return "slide"
	case InputAttack:
		return "attack"
	case InputPause:
		return "pause"
	case InputRestart:
		return "restart"
	}
	return "unknown"
}

// Priority orders buffered inputs within a kind's queue when priority
// ordering is enabled.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

// BufferedInput is one queued press. Removal from the queue is consumption;
// no tombstone state is kept.
type BufferedInput struct {
	Kind     InputKind
	Priority Priority
	At       float64     // sim time at the press
	Context  common.Vec2 // optional directional payload
}

const (
	DefaultBufferWindow = 0.150 // seconds a press stays consumable
	DefaultMaxPerKind   = 3
)

// InputBuffer decouples the tick a button is pressed from the tick game
// logic consumes it. Each kind owns a bounded queue; entries are valid
// while their age is within Window and disappear either by consumption or
// by the once-per-tick purge.
type InputBuffer struct {
	Window        float64
	MaxPerKind    int
	PriorityOrder bool

	queues [inputKindCount][]BufferedInput

	avgLatency     float64
	latencySamples uint64
}

// NewInputBuffer creates a buffer with the given window (seconds) and
// per-kind capacity. Non-positive arguments fall back to the defaults.
func NewInputBuffer(window float64, maxPerKind int, priorityOrder bool) *InputBuffer {
	if window <= 0 {
		window = DefaultBufferWindow
	}
	if maxPerKind <= 0 {
		maxPerKind = DefaultMaxPerKind
	}
	return &InputBuffer{
		Window:        window,
		MaxPerKind:    maxPerKind,
		PriorityOrder: priorityOrder,
	}
}

var InputBufferComponent = NewComponent[InputBuffer]()

func (b *InputBuffer) valid(in BufferedInput, now float64) bool {
	return now-in.At <= b.Window
}

// Buffer enqueues a press at the current sim time. A full queue evicts its
// oldest entry first. With priority ordering enabled the queue stays sorted
// by descending priority, ties keeping insertion order.
func (b *InputBuffer) Buffer(kind InputKind, pri Priority, ctx common.Vec2, now float64) {
	if b == nil || kind >= inputKindCount {
		return
	}
	q := b.queues[kind]

	if b.MaxPerKind > 0 && len(q) >= b.MaxPerKind {
		oldest := 0
		for i := 1; i < len(q); i++ {
			if q[i].At < q[oldest].At {
				oldest = i
			}
		}
		q = append(q[:oldest], q[oldest+1:]...)
	}

	in := BufferedInput{Kind: kind, Priority: pri, At: now, Context: ctx}
	if !b.PriorityOrder {
		b.queues[kind] = append(q, in)
		return
	}
	pos := len(q)
	for i, existing := range q {
		if existing.Priority < pri {
			pos = i
			break
		}
	}
	q = append(q, BufferedInput{})
	copy(q[pos+1:], q[pos:])
	q[pos] = in
	b.queues[kind] = q
}

// Consume removes and reports the first still-valid entry for kind.
func (b *InputBuffer) Consume(kind InputKind, now float64) bool {
	_, ok := b.ConsumeContext(kind, now)
	return ok
}

// ConsumeContext is Consume returning the entry's directional payload.
func (b *InputBuffer) ConsumeContext(kind InputKind, now float64) (common.Vec2, bool) {
	if b == nil || kind >= inputKindCount {
		return common.Vec2{}, false
	}
	q := b.queues[kind]
	for i, in := range q {
		if !b.valid(in, now) {
			continue
		}
		b.queues[kind] = append(q[:i], q[i+1:]...)
		b.recordLatency(now - in.At)
		return in.Context, true
	}
	return common.Vec2{}, false
}

// Has reports whether any still-valid entry exists for kind, without
// consuming it.
func (b *InputBuffer) Has(kind InputKind, now float64) bool {
	if b == nil || kind >= inputKindCount {
		return false
	}
	for _, in := range b.queues[kind] {
		if b.valid(in, now) {
			return true
		}
	}
	return false
}

// Age returns the age of the oldest valid entry for kind, or +Inf if the
// queue holds none.
func (b *InputBuffer) Age(kind InputKind, now float64) float64 {
	if b == nil || kind >= inputKindCount {
		return math.Inf(1)
	}
	oldest := math.Inf(1)
	for _, in := range b.queues[kind] {
		if !b.valid(in, now) {
			continue
		}
		if age := now - in.At; math.IsInf(oldest, 1) || age > oldest {
			oldest = age
		}
	}
	return oldest
}

// Count returns the number of currently valid entries for kind.
func (b *InputBuffer) Count(kind InputKind, now float64) int {
	if b == nil || kind >= inputKindCount {
		return 0
	}
	n := 0
	for _, in := range b.queues[kind] {
		if b.valid(in, now) {
			n++
		}
	}
	return n
}

// Purge drops every expired entry across all kinds. This is the only place
// entries disappear without being consumed; run it once per tick.
func (b *InputBuffer) Purge(now float64) {
	if b == nil {
		return
	}
	for kind := range b.queues {
		q := b.queues[kind][:0]
		for _, in := range b.queues[kind] {
			if b.valid(in, now) {
				q = append(q, in)
			}
		}
		b.queues[kind] = q
	}
}

// Clear empties every queue.
func (b *InputBuffer) Clear() {
	if b == nil {
		return
	}
	for kind := range b.queues {
		b.queues[kind] = b.queues[kind][:0]
	}
}

// ClearKind empties one kind's queue.
func (b *InputBuffer) ClearKind(kind InputKind) {
	if b == nil || kind >= inputKindCount {
		return
	}
	b.queues[kind] = b.queues[kind][:0]
}

// ClearPriority removes all entries of the given priority across kinds.
func (b *InputBuffer) ClearPriority(pri Priority) {
	if b == nil {
		return
	}
	for kind := range b.queues {
		q := b.queues[kind][:0]
		for _, in := range b.queues[kind] {
			if in.Priority != pri {
				q = append(q, in)
			}
		}
		b.queues[kind] = q
	}
}

func (b *InputBuffer) recordLatency(age float64) {
	if b.latencySamples == 0 {
		b.avgLatency = age
	} else {
		b.avgLatency = b.avgLatency*0.9 + age*0.1
	}
	b.latencySamples++
}

// AverageLatency is a moving average (0.9 old / 0.1 new) of the age of
// consumed inputs, for tuning the buffer window.
func (b *InputBuffer) AverageLatency() float64 {
	if b == nil {
		return 0
	}
	return b.avgLatency
}
