// Package stats provides descriptive statistics over sequences of
// floating-point samples.
//
// Every function comes in three equivalent forms: over an iter.Seq (any
// lazily traversable range), over a slice, and over a [Signal]. The slice
// and signal forms forward to the sequence form, so all three produce
// identical results on equivalent data.
//
// The core functions perform no input validation. Violating the documented
// non-empty preconditions yields ordinary IEEE 754 division-by-zero results
// (NaN or ±Inf) rather than an error or panic.
package stats

import (
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Weight selects the denominator used by variance and standard deviation.
type Weight int

const (
	// Sample divides the sum of squared deviations by N-1, the unbiased
	// estimator when the data is a sample drawn from a larger population.
	// It is the zero value and therefore the default.
	Sample Weight = iota
	// Population divides by N, for data covering the entire population.
	Population
)

// MeanSeq returns the arithmetic mean of the values in seq.
//
// The sequence must be non-empty: an empty sequence divides a zero sum by a
// zero count and yields NaN.
func MeanSeq[T constraints.Float](seq iter.Seq[T]) T {
	var sum T
	var n int
	for x := range seq {
		sum += x
		n++
	}
	return sum / T(n)
}

// VarSeq returns the variance of the values in seq under w.
//
// The sequence must be non-empty and is traversed twice, so seq must be
// re-iterable. With Sample weight a single-element sequence divides by a
// zero denominator; the IEEE 754 result is returned as is.
func VarSeq[T constraints.Float](seq iter.Seq[T], w Weight) T {
	mu := MeanSeq(seq)
	var sum T
	var n int
	for x := range seq {
		d := x - mu
		sum += d * d
		n++
	}
	if w == Sample {
		return sum / T(n-1)
	}
	return sum / T(n)
}

// StdSeq returns the standard deviation of the values in seq under w. NaN
// and Inf artifacts from VarSeq propagate unchanged.
func StdSeq[T constraints.Float](seq iter.Seq[T], w Weight) T {
	return T(math.Sqrt(float64(VarSeq(seq, w))))
}

// Mean returns the arithmetic mean of x. See MeanSeq.
func Mean[T constraints.Float](x []T) T {
	return MeanSeq(slices.Values(x))
}

// Var returns the variance of x under w. See VarSeq.
func Var[T constraints.Float](x []T, w Weight) T {
	return VarSeq(slices.Values(x), w)
}

// Std returns the standard deviation of x under w. See StdSeq.
func Std[T constraints.Float](x []T, w Weight) T {
	return StdSeq(slices.Values(x), w)
}
