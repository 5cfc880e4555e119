package flow

import "math"

// Fixed state indices shared by every scenario.
const (
	PlantLevelIdx     = 0
	SoilWaterLevelIdx = 1
)

// Default names of the two built-in state variables.
const (
	PlantLevelName     = "plant_level"
	SoilWaterLevelName = "soil_water_level"
)

// Derivative returns the instantaneous rate of change of one state variable.
// It sees the full state vector, the current time and the input signal, and
// must be total: any finite input yields a value without panicking.
type Derivative func(x []float64, t float64, input bool) float64

// Interval is the half-open window (Lo, Hi]. Bounds may be given in either
// order; Contains always uses the smaller one as the open end.
type Interval struct {
	Lo float64
	Hi float64
}

// Contains reports whether lo < x <= hi.
func (iv Interval) Contains(x float64) bool {
	lo := math.Min(iv.Lo, iv.Hi)
	hi := math.Max(iv.Lo, iv.Hi)
	return x > lo && x <= hi
}

// IntervalIndicator returns onTrue while x[idx] lies in iv and onFalse
// otherwise. An index outside the state vector counts as outside the window.
func IntervalIndicator(iv Interval, idx int, onTrue, onFalse float64) Derivative {
	return func(x []float64, _ float64, _ bool) float64 {
		if idx < 0 || idx >= len(x) {
			return onFalse
		}
		if iv.Contains(x[idx]) {
			return onTrue
		}
		return onFalse
	}
}

// InputSwitched returns onInput while the input signal is set and noInput
// otherwise. State and time are ignored.
func InputSwitched(onInput, noInput float64) Derivative {
	return func(_ []float64, _ float64, input bool) float64 {
		if input {
			return onInput
		}
		return noInput
	}
}

// PlantGrowthRate grows the plant while the soil water level sits in the
// optimal window and decays it otherwise.
func PlantGrowthRate(optimal Interval, growth, decay float64) Derivative {
	return IntervalIndicator(optimal, SoilWaterLevelIdx, growth, decay)
}

// WaterFlowRate raises the soil water level while the input is held.
func WaterFlowRate(onPush, noPush float64) Derivative {
	return InputSwitched(onPush, noPush)
}

// DefaultOptimalSoil is the soil water window in which plants grow.
var DefaultOptimalSoil = Interval{Lo: 0, Hi: 40}

// DefaultDerivatives returns the plant/water pair used by the stock garden.
func DefaultDerivatives() []Derivative {
	return []Derivative{
		PlantGrowthRate(DefaultOptimalSoil, 1, -1),
		WaterFlowRate(1, -1),
	}
}
