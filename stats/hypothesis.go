package stats

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// MannWhitneyU performs a Mann-Whitney U test on two sample sets and
// returns the two-tailed p-value, approximated through the normal
// distribution. The null hypothesis is that both sets come from the same
// distribution. Either set being empty yields 1.
func MannWhitneyU[T constraints.Float](a, b []T) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1
	}

	n1 := len(a)
	n2 := len(b)

	type ranked struct {
		value T
		group int
	}
	combined := make([]ranked, 0, n1+n2)
	for _, v := range a {
		combined = append(combined, ranked{v, 0})
	}
	for _, v := range b {
		combined = append(combined, ranked{v, 1})
	}
	sort.Slice(combined, func(i, j int) bool {
		return combined[i].value < combined[j].value
	})

	// Tied values share the average of the ranks they span.
	ranks := make([]float64, len(combined))
	for i := 0; i < len(combined); {
		j := i
		for j < len(combined) && combined[j].value == combined[i].value {
			j++
		}
		avgRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[k] = avgRank
		}
		i = j
	}

	rankSumA := 0.0
	for i, item := range combined {
		if item.group == 0 {
			rankSumA += ranks[i]
		}
	}

	u1 := rankSumA - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	u := math.Min(u1, u2)

	meanU := float64(n1*n2) / 2
	stdU := math.Sqrt(float64(n1*n2*(n1+n2+1)) / 12)
	if stdU == 0 {
		return 1
	}
	z := (u - meanU) / stdU

	return 2 * normalCDF(-math.Abs(z))
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// Comparison summarizes how two sample sets differ.
type Comparison struct {
	MedianDiffPct float64 // percentage change of b's median relative to a's
	PValue        float64 // Mann-Whitney U p-value
	Overlap       bool    // whether the value ranges overlap
	Significant   bool    // whether PValue < 0.05
}

// Compare runs a statistical comparison of two sample sets. Either set
// being empty yields a Comparison with PValue 1 and no overlap.
func Compare[T constraints.Float](a, b []T) Comparison {
	if len(a) == 0 || len(b) == 0 {
		return Comparison{PValue: 1}
	}

	medianA := Median(a)
	medianDiff := 0.0
	if medianA != 0 {
		medianDiff = float64((Median(b)-medianA)/medianA) * 100
	}

	minA, maxA := minMax(a)
	minB, maxB := minMax(b)
	pValue := MannWhitneyU(a, b)

	return Comparison{
		MedianDiffPct: medianDiff,
		PValue:        pValue,
		Overlap:       !(minA > maxB || minB > maxA),
		Significant:   pValue < 0.05,
	}
}

func minMax[T constraints.Float](x []T) (min, max T) {
	min, max = x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
