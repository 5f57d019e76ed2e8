package scene

import "time"

// timingBuffer is a ring of the most recent tick durations. The overlay
// shows its average rather than single samples, which jump around too much
// to read.
type timingBuffer struct {
	samples []time.Duration
	index   int
	filled  bool
}

func newTimingBuffer(maxCapacity int) *timingBuffer {
	return &timingBuffer{
		samples: make([]time.Duration, maxCapacity),
	}
}

func (b *timingBuffer) Add(d time.Duration) {
	b.samples[b.index] = d
	b.index = (b.index + 1) % cap(b.samples)
	if b.index == 0 {
		b.filled = true
	}
}

func (b *timingBuffer) Average() time.Duration {
	n := cap(b.samples)
	if !b.filled {
		n = b.index
	}
	if n == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range b.samples[:n] {
		total += d
	}
	return total / time.Duration(n)
}
