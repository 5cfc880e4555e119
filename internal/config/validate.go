package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flow-garden/internal/core"
	"github.com/vovakirdan/flow-garden/internal/flow"
)

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a scenario configuration for values the simulation core
// would reject or the host loop cannot run.
func Validate(cfg ScenarioConfig) error {
	if err := validateDynamics(cfg.Dynamics); err != nil {
		return err
	}
	if err := validateExtras(cfg.Extras); err != nil {
		return err
	}
	if err := validateThresholds(cfg.Vegetation.Thresholds); err != nil {
		return err
	}
	for i, seg := range cfg.Input {
		if seg.Updates < 1 {
			return ValidationError{
				Code:    "INVALID_INPUT",
				Message: fmt.Sprintf("input segment %d must last at least one update, got %d", i, seg.Updates),
			}
		}
	}
	if cfg.Loop.UpdateEvery < 0 || cfg.Loop.Frames < 0 || cfg.Loop.TickRate < 0 {
		return ValidationError{Code: "INVALID_LOOP", Message: "loop settings must not be negative"}
	}
	if cfg.Loop.FlowTimestep < 0 || math.IsNaN(cfg.Loop.FlowTimestep) {
		return ValidationError{
			Code:    "INVALID_LOOP",
			Message: fmt.Sprintf("flow timestep must not be negative, got %v", cfg.Loop.FlowTimestep),
		}
	}
	// Zero falls back to the runtime default, which is what the loop will use.
	timestep := cfg.Loop.FlowTimestep
	if timestep == 0 {
		timestep = core.DefaultConfig().FlowTimestep
	}
	if steps := timestep / cfg.Dynamics.NumericalDt; steps > flow.MaxSteps {
		return ValidationError{
			Code: "INVALID_LOOP",
			Message: fmt.Sprintf("flow timestep %v over numerical_dt %v needs %.3g steps per update, limit is %d",
				timestep, cfg.Dynamics.NumericalDt, steps, flow.MaxSteps),
		}
	}
	return nil
}

func validateDynamics(d DynamicsConfig) error {
	if !(d.NumericalDt > 0) || math.IsInf(d.NumericalDt, 1) {
		return ValidationError{
			Code:    "INVALID_DT",
			Message: fmt.Sprintf("numerical_dt must be positive, got %v", d.NumericalDt),
		}
	}
	if d.MaxHistory < 1 {
		return ValidationError{
			Code:    "INVALID_HISTORY",
			Message: fmt.Sprintf("max_history must be at least 1, got %d", d.MaxHistory),
		}
	}
	return nil
}

func validateExtras(extras []ExtraState) error {
	seen := map[string]bool{"plant_level": true, "soil_water_level": true}
	for i, x := range extras {
		if x.Name == "" {
			return ValidationError{Code: "INVALID_EXTRA", Message: fmt.Sprintf("extra state %d has no name", i)}
		}
		if seen[x.Name] {
			return ValidationError{Code: "DUPLICATE_EXTRA", Message: fmt.Sprintf("state name %q used twice", x.Name)}
		}
		seen[x.Name] = true

		switch x.Rate.Kind {
		case RateInterval:
			if x.Rate.Index < 0 || x.Rate.Index >= len(extras)+2 {
				return ValidationError{
					Code:    "INVALID_RATE",
					Message: fmt.Sprintf("extra %q watches index %d outside the state vector", x.Name, x.Rate.Index),
				}
			}
		case RateInput:
		default:
			return ValidationError{
				Code:    "INVALID_RATE",
				Message: fmt.Sprintf("extra %q has unknown rate kind %q", x.Name, x.Rate.Kind),
			}
		}
	}
	return nil
}

func validateThresholds(th []float64) error {
	for i := 1; i < len(th); i++ {
		if !(th[i] > th[i-1]) {
			return ValidationError{
				Code:    "INVALID_THRESHOLDS",
				Message: fmt.Sprintf("vegetation thresholds must increase strictly, got %v", th),
			}
		}
	}
	return nil
}
