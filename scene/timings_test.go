package scene

import (
	"testing"
	"time"
)

func TestTimingBufferEmpty(t *testing.T) {
	b := newTimingBuffer(4)
	if got := b.Average(); got != 0 {
		t.Fatalf("Average() = %v, want 0", got)
	}
}

func TestTimingBufferPartialFill(t *testing.T) {
	b := newTimingBuffer(4)
	b.Add(10 * time.Millisecond)
	b.Add(20 * time.Millisecond)

	if got := b.Average(); got != 15*time.Millisecond {
		t.Fatalf("Average() = %v, want 15ms", got)
	}
}

func TestTimingBufferWrapsAround(t *testing.T) {
	b := newTimingBuffer(4)
	for i := 1; i <= 6; i++ {
		b.Add(time.Duration(i) * time.Millisecond)
	}

	// Only the last four samples remain: 3, 4, 5 and 6.
	if got := b.Average(); got != 4500*time.Microsecond {
		t.Fatalf("Average() = %v, want 4.5ms", got)
	}
}
