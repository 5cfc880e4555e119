// Package scenarios defines the stock garden scenarios and turns scenario
// configuration into a wired simulation. Importing the package registers
// every scenario with the registry.
package scenarios

import (
	"fmt"

	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/flow"
)

// Options converts a scenario configuration into simulation options:
// plant growth and water flow first, then one derivative per extra state.
func Options(cfg config.ScenarioConfig) flow.Options {
	d := cfg.Dynamics
	opts := flow.Options{
		ExtraStates: len(cfg.Extras),
		Derivatives: []flow.Derivative{
			flow.PlantGrowthRate(interval(d.OptimalSoil), d.GrowthRate, d.DecayRate),
			flow.WaterFlowRate(d.WaterOnInput, d.WaterNoInput),
		},
		InitialState: []float64{d.InitialPlant, d.InitialWater},
		NumericalDt:  d.NumericalDt,
		MaxHistory:   d.MaxHistory,
	}
	for _, x := range cfg.Extras {
		opts.ExtraNames = append(opts.ExtraNames, x.Name)
		opts.Derivatives = append(opts.Derivatives, rate(x.Rate))
		opts.InitialState = append(opts.InitialState, x.Initial)
	}
	return opts
}

// rate builds the derivative family named by rc.Kind. Unknown kinds are
// rejected by config.Validate; here they fall back to a zero rate.
func rate(rc config.RateConfig) flow.Derivative {
	switch rc.Kind {
	case config.RateInterval:
		return flow.IntervalIndicator(interval(rc.Window), rc.Index, rc.OnTrue, rc.OnFalse)
	case config.RateInput:
		return flow.InputSwitched(rc.OnInput, rc.NoInput)
	default:
		return flow.InputSwitched(0, 0)
	}
}

func interval(w config.Window) flow.Interval {
	lo, hi := w.Bounds()
	return flow.Interval{Lo: lo, Hi: hi}
}

// build creates the dynamics for cfg and registers the given events on it.
func build(cfg config.ScenarioConfig, events []eventSpec) (*flow.Dynamics, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	dyn, err := Options(cfg).Build()
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		if _, err := dyn.AddEvent(ev.name, ev.predicate, ev.desc); err != nil {
			return nil, fmt.Errorf("event %s: %w", ev.name, err)
		}
	}
	return dyn, nil
}

// eventSpec is an event not yet bound to a Dynamics.
type eventSpec struct {
	name      string
	predicate flow.Predicate
	desc      flow.Descriptor
}
