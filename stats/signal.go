package stats

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Signal is the traversal contract of an external sample container. The
// library only reads through it: Samples must yield the stored samples in
// order and must be re-iterable, and Len must report how many samples a
// full traversal yields. Nothing else about the container matters here.
type Signal[T constraints.Float] interface {
	Samples() iter.Seq[T]
	Len() int
}

// MeanSignal returns the arithmetic mean of the samples of s. See MeanSeq.
func MeanSignal[T constraints.Float](s Signal[T]) T {
	return MeanSeq(s.Samples())
}

// VarSignal returns the variance of the samples of s under w. See VarSeq.
func VarSignal[T constraints.Float](s Signal[T], w Weight) T {
	return VarSeq(s.Samples(), w)
}

// StdSignal returns the standard deviation of the samples of s under w.
// See StdSeq.
func StdSignal[T constraints.Float](s Signal[T], w Weight) T {
	return StdSeq(s.Samples(), w)
}
