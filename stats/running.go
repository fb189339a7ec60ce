package stats

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Running accumulates samples one at a time using Welford's online
// algorithm, for callers whose sample stream never materializes as a slice.
// The zero value is ready to use.
type Running[T constraints.Float] struct {
	count int
	mean  T
	m2    T
}

// Push folds one sample into the accumulator.
func (r *Running[T]) Push(x T) {
	r.count++
	delta := x - r.mean
	r.mean += delta / T(r.count)
	r.m2 += delta * (x - r.mean)
}

// Count returns the number of samples pushed so far.
func (r *Running[T]) Count() int { return r.count }

// Mean returns the running mean, or zero before any sample is pushed.
func (r *Running[T]) Mean() T { return r.mean }

// Var returns the running variance under w. With Sample weight and fewer
// than two samples the denominator is not positive and the IEEE 754
// division result is returned as is.
func (r *Running[T]) Var(w Weight) T {
	if w == Sample {
		return r.m2 / T(r.count-1)
	}
	return r.m2 / T(r.count)
}

// Std returns the running standard deviation under w.
func (r *Running[T]) Std(w Weight) T {
	return T(math.Sqrt(float64(r.Var(w))))
}

// Reset discards all accumulated state.
func (r *Running[T]) Reset() {
	*r = Running[T]{}
}
