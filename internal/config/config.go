// Package config provides YAML-based scenario configuration loading for the
// garden simulator.
package config

// ScenarioConfig contains all configuration for one scenario.
type ScenarioConfig struct {
	Dynamics   DynamicsConfig   `yaml:"dynamics"`
	Extras     []ExtraState     `yaml:"extras"`
	Vegetation VegetationConfig `yaml:"vegetation"`
	Loop       LoopConfig       `yaml:"loop"`
	Input      []InputSegment   `yaml:"input"`
}

// DynamicsConfig defines the plant/water model and integrator settings.
type DynamicsConfig struct {
	NumericalDt  float64 `yaml:"numerical_dt"`
	MaxHistory   int     `yaml:"max_history"`
	InitialPlant float64 `yaml:"initial_plant"`
	InitialWater float64 `yaml:"initial_water"`
	OptimalSoil  Window  `yaml:"optimal_soil"` // Plants grow while soil water is in (lo, hi]
	GrowthRate   float64 `yaml:"growth_rate"`
	DecayRate    float64 `yaml:"decay_rate"`
	WaterOnInput float64 `yaml:"water_on_input"`
	WaterNoInput float64 `yaml:"water_no_input"`
}

// Window is a half-open (lo, hi] range. Omitted bounds are unbounded.
type Window struct {
	Lo *float64 `yaml:"lo,omitempty"`
	Hi *float64 `yaml:"hi,omitempty"`
}

// ExtraState declares a caller-defined state variable and its rate rule.
type ExtraState struct {
	Name    string     `yaml:"name"`
	Initial float64    `yaml:"initial"`
	Rate    RateConfig `yaml:"rate"`
}

// Rate rule kinds.
const (
	RateInterval = "interval" // on_true/on_false by window membership of state[index]
	RateInput    = "input"    // on_input/no_input by the input signal
)

// RateConfig selects one of the derivative families.
type RateConfig struct {
	Kind    string  `yaml:"kind"`
	Index   int     `yaml:"index,omitempty"`
	Window  Window  `yaml:"window,omitempty"`
	OnTrue  float64 `yaml:"on_true,omitempty"`
	OnFalse float64 `yaml:"on_false,omitempty"`
	OnInput float64 `yaml:"on_input,omitempty"`
	NoInput float64 `yaml:"no_input,omitempty"`
}

// VegetationConfig sets the plant-level thresholds that separate the
// vegetation stages (grass, small, medium, big).
type VegetationConfig struct {
	Thresholds []float64 `yaml:"thresholds"`
}

// LoopConfig defines the host loop cadence.
type LoopConfig struct {
	TickRate     int     `yaml:"tick_rate"`
	UpdateEvery  int     `yaml:"update_every"`
	FlowTimestep float64 `yaml:"flow_timestep"`
	Frames       int     `yaml:"frames"`
}

// InputSegment holds the input signal for a number of consecutive updates.
type InputSegment struct {
	Updates int  `yaml:"updates"`
	Pressed bool `yaml:"pressed"`
}

// Bounds returns the window edges, substituting infinities for omitted ones.
func (w Window) Bounds() (lo, hi float64) {
	lo, hi = negInf, posInf
	if w.Lo != nil {
		lo = *w.Lo
	}
	if w.Hi != nil {
		hi = *w.Hi
	}
	return lo, hi
}

// Bounded returns a window with both edges set.
func Bounded(lo, hi float64) Window {
	return Window{Lo: &lo, Hi: &hi}
}
