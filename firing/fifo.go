package firing

import "github.com/katalvlaran/sadf/maxplus"

// FIFO is the token queue of one channel. Each entry is a token timestamp,
// oldest first.
type FIFO struct {
	tokens []float64
}

// Len returns the number of queued tokens.
func (f *FIFO) Len() int { return len(f.tokens) }

// Consume removes the n oldest tokens and returns the latest of their
// timestamps, or MinusInfinity when n is zero. The caller checks Len.
func (f *FIFO) Consume(n int) float64 {
	t := maxplus.MinusInfinity
	for _, x := range f.tokens[:n] {
		t = maxplus.Max(t, x)
	}
	f.tokens = f.tokens[n:]

	return t
}

// Produce appends n tokens stamped t.
func (f *FIFO) Produce(n int, t float64) {
	for i := 0; i < n; i++ {
		f.tokens = append(f.tokens, t)
	}
}
