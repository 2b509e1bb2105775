package component

import (
	"math"
	"testing"

	"github.com/whiskerking/platformer/common"
)

func TestInputBufferDefaults(t *testing.T) {
	b := NewInputBuffer(0, 0, true)
	if b.Window != DefaultBufferWindow {
		t.Errorf("Window = %v, want %v", b.Window, DefaultBufferWindow)
	}
	if b.MaxPerKind != DefaultMaxPerKind {
		t.Errorf("MaxPerKind = %d, want %d", b.MaxPerKind, DefaultMaxPerKind)
	}
}

func TestInputBufferConsumeWithinWindow(t *testing.T) {
	tests := []struct {
		name      string
		pressedAt float64
		consumeAt float64
		want      bool
	}{
		{"same tick", 1.0, 1.0, true},
		{"well inside window", 1.0, 1.1, true},
		{"exactly at window edge", 1.0, 1.15, true},
		{"just past window", 1.0, 1.151, false},
		{"long expired", 1.0, 2.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInputBuffer(0.150, 3, true)
			b.Buffer(InputJump, PriorityNormal, common.Vec2{}, tt.pressedAt)
			if got := b.Consume(InputJump, tt.consumeAt); got != tt.want {
				t.Errorf("Consume = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestInputBufferConsumeRemoves(t *testing.T) {
	b := NewInputBuffer(0.150, 3, true)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 0)

	if !b.Consume(InputJump, 0.05) {
		t.Fatal("first Consume should succeed")
	}
	if b.Consume(InputJump, 0.05) {
		t.Error("second Consume should find an empty queue")
	}
}

func TestInputBufferCapacityEvictsOldest(t *testing.T) {
	b := NewInputBuffer(10, 3, false)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 1}, 0.0)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 2}, 0.1)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 3}, 0.2)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 4}, 0.3)

	if got := b.Count(InputJump, 0.3); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	ctx, ok := b.ConsumeContext(InputJump, 0.3)
	if !ok || ctx.X != 2 {
		t.Errorf("first entry after eviction has context %v, want X=2", ctx)
	}
}

func TestInputBufferPriorityOrdering(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		b := NewInputBuffer(10, 4, true)
		b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 1}, 0.0)
		b.Buffer(InputJump, PriorityCritical, common.Vec2{X: 2}, 0.1)
		b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 3}, 0.2)
		b.Buffer(InputJump, PriorityHigh, common.Vec2{X: 4}, 0.3)

		var got []float64
		for {
			ctx, ok := b.ConsumeContext(InputJump, 0.3)
			if !ok {
				break
			}
			got = append(got, ctx.X)
		}

		// critical first, then high, then normals in press order
		want := []float64{2, 4, 1, 3}
		if len(got) != len(want) {
			t.Fatalf("consumed %d entries, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("consume order[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("disabled keeps press order", func(t *testing.T) {
		b := NewInputBuffer(10, 4, false)
		b.Buffer(InputJump, PriorityNormal, common.Vec2{X: 1}, 0.0)
		b.Buffer(InputJump, PriorityCritical, common.Vec2{X: 2}, 0.1)

		ctx, _ := b.ConsumeContext(InputJump, 0.1)
		if ctx.X != 1 {
			t.Errorf("first consumed context = %v, want X=1", ctx)
		}
	})
}

func TestInputBufferKindsAreIndependent(t *testing.T) {
	b := NewInputBuffer(0.150, 3, true)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 0)

	if b.Consume(InputSlide, 0.05) {
		t.Error("slide queue should be empty")
	}
	if !b.Consume(InputJump, 0.05) {
		t.Error("jump queue should still hold the press")
	}
}

func TestInputBufferAge(t *testing.T) {
	b := NewInputBuffer(0.150, 3, true)
	if age := b.Age(InputJump, 1.0); !math.IsInf(age, 1) {
		t.Errorf("empty queue Age = %v, want +Inf", age)
	}

	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 1.0)
	if age := b.Age(InputJump, 1.1); math.Abs(age-0.1) > 1e-9 {
		t.Errorf("Age = %v, want 0.1", age)
	}
}

func TestInputBufferPurge(t *testing.T) {
	b := NewInputBuffer(0.150, 3, true)
	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 0.0)
	b.Buffer(InputSlide, PriorityNormal, common.Vec2{}, 0.2)

	b.Purge(0.3)

	if b.Has(InputJump, 0.3) {
		t.Error("expired jump should be purged")
	}
	if !b.Has(InputSlide, 0.3) {
		t.Error("fresh slide should survive the purge")
	}
}

func TestInputBufferClears(t *testing.T) {
	fill := func() *InputBuffer {
		b := NewInputBuffer(10, 3, true)
		b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 0)
		b.Buffer(InputSlide, PriorityHigh, common.Vec2{}, 0)
		b.Buffer(InputPause, PriorityCritical, common.Vec2{}, 0)
		return b
	}

	t.Run("Clear", func(t *testing.T) {
		b := fill()
		b.Clear()
		for kind := InputJump; kind < inputKindCount; kind++ {
			if b.Has(kind, 0) {
				t.Errorf("kind %v survived Clear", kind)
			}
		}
	})

	t.Run("ClearKind", func(t *testing.T) {
		b := fill()
		b.ClearKind(InputJump)
		if b.Has(InputJump, 0) {
			t.Error("jump survived ClearKind")
		}
		if !b.Has(InputSlide, 0) {
			t.Error("slide should survive ClearKind(jump)")
		}
	})

	t.Run("ClearPriority", func(t *testing.T) {
		b := fill()
		b.ClearPriority(PriorityCritical)
		if b.Has(InputPause, 0) {
			t.Error("critical pause survived ClearPriority")
		}
		if !b.Has(InputJump, 0) || !b.Has(InputSlide, 0) {
			t.Error("non-critical entries should survive ClearPriority")
		}
	})
}

func TestInputBufferAverageLatency(t *testing.T) {
	b := NewInputBuffer(10, 3, true)
	if b.AverageLatency() != 0 {
		t.Errorf("latency before any consume = %v, want 0", b.AverageLatency())
	}

	// first sample seeds the average directly
	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 0.0)
	b.Consume(InputJump, 0.10)
	if got := b.AverageLatency(); math.Abs(got-0.10) > 1e-9 {
		t.Fatalf("latency after first consume = %v, want 0.10", got)
	}

	// later samples blend 0.9 old / 0.1 new
	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 1.0)
	b.Consume(InputJump, 1.02)
	want := 0.10*0.9 + 0.02*0.1
	if got := b.AverageLatency(); math.Abs(got-want) > 1e-9 {
		t.Errorf("latency after second consume = %v, want %v", got, want)
	}
}

func TestInputBufferNilSafe(t *testing.T) {
	var b *InputBuffer
	b.Buffer(InputJump, PriorityNormal, common.Vec2{}, 0)
	b.Purge(0)
	b.Clear()
	if b.Consume(InputJump, 0) {
		t.Error("nil buffer Consume should report false")
	}
	if b.Count(InputJump, 0) != 0 {
		t.Error("nil buffer Count should be 0")
	}
}
