package stats

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Summary holds the descriptive measures of one sample set.
type Summary[T constraints.Float] struct {
	Count  int
	Mean   T
	Var    T
	Std    T
	Median T
	Min    T
	Max    T
	CV     T
}

// Median returns the middle sample of x, or the mean of the two middle
// samples for an even count. The empty slice yields zero.
func Median[T constraints.Float](x []T) T {
	if len(x) == 0 {
		return 0
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the p-th percentile of x, with p in [0, 1], linearly
// interpolating between the two nearest order statistics. The empty slice
// yields zero.
func Percentile[T constraints.Float](x []T, p float64) T {
	if len(x) == 0 {
		return 0
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	idx := p * float64(len(sorted)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := T(idx - float64(lower))
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// CV returns the coefficient of variation of x under w: the standard
// deviation divided by the absolute mean. A zero mean yields zero.
func CV[T constraints.Float](x []T, w Weight) T {
	mu := Mean(x)
	if mu == 0 {
		return 0
	}
	return Std(x, w) / T(math.Abs(float64(mu)))
}

// Mode returns the most frequent sample in x and its multiplicity. Ties go
// to the value that reached the winning count first.
func Mode[T constraints.Float](x []T) (mode T, count int) {
	counts := make(map[T]int, len(x))
	for _, v := range x {
		counts[v]++
		if counts[v] > count {
			mode, count = v, counts[v]
		}
	}
	return mode, count
}

// Describe computes all descriptive measures of x in one call. The empty
// slice yields the zero Summary.
func Describe[T constraints.Float](x []T, w Weight) Summary[T] {
	if len(x) == 0 {
		return Summary[T]{}
	}
	v := Var(x, w)
	return Summary[T]{
		Count:  len(x),
		Mean:   Mean(x),
		Var:    v,
		Std:    T(math.Sqrt(float64(v))),
		Median: Median(x),
		Min:    slices.Min(x),
		Max:    slices.Max(x),
		CV:     CV(x, w),
	}
}

// DescribeSignal computes the Summary of the samples of s. See Describe.
func DescribeSignal[T constraints.Float](s Signal[T], w Weight) Summary[T] {
	x := make([]T, 0, s.Len())
	for v := range s.Samples() {
		x = append(x, v)
	}
	return Describe(x, w)
}
