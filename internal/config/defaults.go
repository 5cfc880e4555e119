package config

import (
	"embed"
	"math"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// DefaultScenarioConfig returns the hard-coded garden configuration. It is
// the fallback when no YAML source can be read.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Dynamics: DynamicsConfig{
			NumericalDt:  0.01,
			MaxHistory:   100_000,
			InitialPlant: 0,
			InitialWater: 0,
			OptimalSoil:  Bounded(0, 40),
			GrowthRate:   1,
			DecayRate:    -1,
			WaterOnInput: 1,
			WaterNoInput: -1,
		},
		Vegetation: VegetationConfig{
			Thresholds: []float64{10, 20, 30},
		},
		Loop: LoopConfig{
			TickRate:     60,
			UpdateEvery:  10,
			FlowTimestep: 1.0,
			Frames:       600,
		},
		Input: []InputSegment{
			{Updates: 15, Pressed: true},
			{Updates: 5, Pressed: false},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scenario.
func GetDefaultYAML(scenarioID string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", scenarioID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
