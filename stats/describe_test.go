package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"odd count", []float64{9, 1, 5}, 5},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
		{"single sample", []float64{42}, 42},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.x))
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	x := []float64{3, 1, 2}
	Median(x)
	assert.Equal(t, []float64{3, 1, 2}, x)
}

func TestPercentile(t *testing.T) {
	t.Parallel()
	x := []float64{10, 20, 30, 40, 50}
	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{"p0 is min", 0, 10},
		{"p100 is max", 1, 50},
		{"p50 is median", 0.5, 30},
		{"interpolated", 0.25, 20},
		{"between order statistics", 0.1, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(x, tt.p), 1e-12)
		})
	}
	assert.Equal(t, 0.0, Percentile[float64](nil, 0.5))
}

func TestCV(t *testing.T) {
	t.Parallel()
	// mean 4, sample stddev 2.
	assert.InDelta(t, 0.5, CV([]float64{2, 4, 6}, Sample), 1e-12)
	// Negative mean: CV uses the absolute mean.
	assert.InDelta(t, 0.5, CV([]float64{-2, -4, -6}, Sample), 1e-12)
	// Zero mean is guarded.
	assert.Equal(t, 0.0, CV([]float64{-1, 1}, Sample))
}

func TestMode(t *testing.T) {
	t.Parallel()
	mode, count := Mode([]float64{1, 2, 2, 3, 2, 1})
	assert.Equal(t, 2.0, mode)
	assert.Equal(t, 3, count)

	mode, count = Mode([]float64{5, 7}) // tie: first to reach the count wins
	assert.Equal(t, 5.0, mode)
	assert.Equal(t, 1, count)

	_, count = Mode[float64](nil)
	assert.Equal(t, 0, count)
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	x := []float64{2, 4, 6}
	s := Describe(x, Sample)

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 4, s.Mean, 1e-12)
	assert.InDelta(t, 4, s.Var, 1e-12)
	assert.InDelta(t, 2, s.Std, 1e-12)
	assert.Equal(t, 4.0, s.Median)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
	assert.InDelta(t, 0.5, s.CV, 1e-12)

	// Summary fields match the standalone functions bit for bit.
	require.Equal(t, Mean(x), s.Mean)
	require.Equal(t, Var(x, Sample), s.Var)
	require.Equal(t, math.Sqrt(s.Var), s.Std)
}

func TestDescribeEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Summary[float64]{}, Describe[float64](nil, Sample))
}

func TestDescribeSignal(t *testing.T) {
	t.Parallel()
	x := []float64{1.25, -4, 9.5, 9.5}
	for _, w := range []Weight{Sample, Population} {
		require.Equal(t, Describe(x, w), DescribeSignal[float64](sliceSignal[float64]{x}, w))
	}
}
