package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, id := range []string{"garden", "pipes"} {
		t.Run(id, func(t *testing.T) {
			data := GetDefaultYAML(id)
			require.NotNil(t, data)

			cfg, err := Parse(data)
			require.NoError(t, err)
			assert.Greater(t, cfg.Dynamics.NumericalDt, 0.0)
			assert.Equal(t, []float64{10, 20, 30}, cfg.Vegetation.Thresholds)
			assert.NotEmpty(t, cfg.Input)
		})
	}
}

func TestGardenDefaultsMatchHardCoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML("garden"))
	require.NoError(t, err)
	assert.Equal(t, DefaultScenarioConfig(), cfg)
}

func TestPipesDefaultsExtras(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML("pipes"))
	require.NoError(t, err)

	require.Len(t, cfg.Extras, 1)
	x := cfg.Extras[0]
	assert.Equal(t, "nutrients", x.Name)
	assert.Equal(t, RateInterval, x.Rate.Kind)
	lo, hi := x.Rate.Window.Bounds()
	assert.Equal(t, 10.0, lo)
	assert.True(t, math.IsInf(hi, 1))
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dynamics:
  numerical_dt: 0.1
loop:
  update_every: 2
input:
  - updates: 1
    pressed: true
`), 0o600))

	cfg, err := Load("garden", path)
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Dynamics.NumericalDt)
	assert.Equal(t, 100_000, cfg.Dynamics.MaxHistory, "omitted fields keep defaults")
	assert.Equal(t, 2, cfg.Loop.UpdateEvery)
	assert.Equal(t, []InputSegment{{Updates: 1, Pressed: true}}, cfg.Input)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load("garden", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dynamics: [not, a, map"), 0o600))
	_, err = Load("garden", path)
	assert.Error(t, err)
}

func TestLoadUnknownScenarioFallsBack(t *testing.T) {
	cfg, err := Load("no-such-scenario", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultScenarioConfig().Dynamics, cfg.Dynamics)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ScenarioConfig)
		code   string
	}{
		{"zero dt", func(c *ScenarioConfig) { c.Dynamics.NumericalDt = 0 }, "INVALID_DT"},
		{"no history", func(c *ScenarioConfig) { c.Dynamics.MaxHistory = 0 }, "INVALID_HISTORY"},
		{"unnamed extra", func(c *ScenarioConfig) {
			c.Extras = []ExtraState{{Rate: RateConfig{Kind: RateInput}}}
		}, "INVALID_EXTRA"},
		{"duplicate extra", func(c *ScenarioConfig) {
			c.Extras = []ExtraState{{Name: "plant_level", Rate: RateConfig{Kind: RateInput}}}
		}, "DUPLICATE_EXTRA"},
		{"unknown kind", func(c *ScenarioConfig) {
			c.Extras = []ExtraState{{Name: "x", Rate: RateConfig{Kind: "sine"}}}
		}, "INVALID_RATE"},
		{"index out of range", func(c *ScenarioConfig) {
			c.Extras = []ExtraState{{Name: "x", Rate: RateConfig{Kind: RateInterval, Index: 3}}}
		}, "INVALID_RATE"},
		{"unsorted thresholds", func(c *ScenarioConfig) { c.Vegetation.Thresholds = []float64{10, 10} }, "INVALID_THRESHOLDS"},
		{"empty segment", func(c *ScenarioConfig) { c.Input = []InputSegment{{Updates: 0}} }, "INVALID_INPUT"},
		{"negative frames", func(c *ScenarioConfig) { c.Loop.Frames = -1 }, "INVALID_LOOP"},
		{"too many steps per update", func(c *ScenarioConfig) {
			c.Dynamics.NumericalDt = 0.1
			c.Loop.FlowTimestep = 1e17
		}, "INVALID_LOOP"},
		{"infinite timestep", func(c *ScenarioConfig) { c.Loop.FlowTimestep = math.Inf(1) }, "INVALID_LOOP"},
		{"default timestep too many steps", func(c *ScenarioConfig) {
			c.Dynamics.NumericalDt = 1e-7
			c.Loop.FlowTimestep = 0
		}, "INVALID_LOOP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultScenarioConfig()
			tc.mutate(&cfg)

			err := Validate(cfg)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code)
		})
	}

	assert.NoError(t, Validate(DefaultScenarioConfig()))
}

func TestInputSchedule(t *testing.T) {
	s := NewInputSchedule([]InputSegment{
		{Updates: 2, Pressed: true},
		{Updates: 0, Pressed: true},
		{Updates: 1, Pressed: false},
	})
	require.Equal(t, 3, s.Period())

	var got []bool
	for i := 0; i < 7; i++ {
		got = append(got, s.Pressed(i))
	}
	assert.Equal(t, []bool{true, true, false, true, true, false, true}, got)
	assert.False(t, s.Pressed(-1))

	empty := NewInputSchedule(nil)
	assert.False(t, empty.Pressed(5))
}
