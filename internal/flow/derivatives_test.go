package flow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalBoundaries(t *testing.T) {
	iv := Interval{Lo: 0, Hi: 40}

	tests := []struct {
		x        float64
		expected bool
	}{
		{-1, false},
		{0, false},
		{math.SmallestNonzeroFloat64, true},
		{20, true},
		{40, true},
		{40.0000001, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, iv.Contains(tc.x), "x=%v", tc.x)
	}

	reversed := Interval{Lo: 40, Hi: 0}
	assert.True(t, reversed.Contains(40))
	assert.False(t, reversed.Contains(0))

	open := Interval{Lo: math.Inf(-1), Hi: 10}
	assert.True(t, open.Contains(-1e300))
	assert.True(t, open.Contains(10))
}

func TestIntervalIndicator(t *testing.T) {
	ddt := IntervalIndicator(Interval{Lo: 10, Hi: 20}, 1, 2.5, -0.5)

	assert.Equal(t, 2.5, ddt([]float64{0, 15}, 0, false))
	assert.Equal(t, 2.5, ddt([]float64{0, 20}, 3, true))
	assert.Equal(t, -0.5, ddt([]float64{0, 10}, 0, false))
	assert.Equal(t, -0.5, ddt([]float64{0}, 0, false), "missing index counts as outside")
	assert.Equal(t, -0.5, ddt([]float64{0, math.NaN()}, 0, false))
}

func TestInputSwitched(t *testing.T) {
	ddt := InputSwitched(3, -2)
	assert.Equal(t, 3.0, ddt(nil, 0, true))
	assert.Equal(t, -2.0, ddt([]float64{100, 100}, 50, false))
}

func TestDefaultDerivatives(t *testing.T) {
	derivs := DefaultDerivatives()
	growth, water := derivs[PlantLevelIdx], derivs[SoilWaterLevelIdx]

	assert.Equal(t, -1.0, growth([]float64{0, 0}, 0, true))
	assert.Equal(t, 1.0, growth([]float64{0, 5}, 0, false))
	assert.Equal(t, 1.0, water([]float64{0, 0}, 0, true))
	assert.Equal(t, -1.0, water([]float64{0, 0}, 0, false))
}
