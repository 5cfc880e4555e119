// Package flow is the continuous-state simulation core of the garden.
//
// A Dynamics value owns a state vector (plant level, soil water level and
// optional extra states), advances it by integrating one Derivative per
// variable, and keeps a bounded history of the trajectory. Registered events
// watch the state after each update and report which opaque asset handles are
// due for display; drawing them is the host's job.
//
// The package is single-threaded: a Dynamics and its events must only be
// touched from the goroutine driving the update loop.
package flow

import (
	"fmt"
	"math"
)

// Defaults taken by DefaultOptions.
const (
	DefaultNumericalDt = 0.01
	DefaultMaxHistory  = 100_000
)

// State is a read-only view of the simulation handed to event predicates.
type State struct {
	Time   float64
	Values []float64
	Names  []string
	Input  bool // input signal of the most recent Advance
}

// Value returns the named variable, or false if no such name exists.
func (s State) Value(name string) (float64, bool) {
	for i, n := range s.Names {
		if n == name && i < len(s.Values) {
			return s.Values[i], true
		}
	}
	return 0, false
}

// Dynamics integrates a vector of coupled state variables.
type Dynamics struct {
	values      []float64
	names       []string
	derivatives []Derivative
	numericalDt float64
	input       bool
	history     *History
	events      []*Event
}

// New creates a Dynamics from positional parts. derivatives[k] produces
// dx[k]; derivatives, initial and names must have the same length.
// The initial state is recorded as the first history sample at t=0.
func New(derivatives []Derivative, initial []float64, names []string, numericalDt float64, maxHistory int) (*Dynamics, error) {
	n := len(derivatives)
	if n == 0 {
		return nil, configErr("no derivatives")
	}
	if len(initial) != n || len(names) != n {
		return nil, configErr("%d derivatives, %d initial values and %d names must all be equal",
			n, len(initial), len(names))
	}
	if !(numericalDt > 0) || math.IsInf(numericalDt, 1) {
		return nil, configErr("numerical dt must be positive and finite, got %v", numericalDt)
	}
	if maxHistory < 1 {
		return nil, configErr("max history must be at least 1, got %d", maxHistory)
	}
	for i, d := range derivatives {
		if d == nil {
			return nil, configErr("derivative %d (%s) is nil", i, names[i])
		}
		if !isFinite(initial[i]) {
			return nil, configErr("initial %s is not finite: %v", names[i], initial[i])
		}
	}

	d := &Dynamics{
		values:      append([]float64(nil), initial...),
		names:       append([]string(nil), names...),
		derivatives: append([]Derivative(nil), derivatives...),
		numericalDt: numericalDt,
		history:     NewHistory(maxHistory),
	}
	d.history.Append(Sample{Time: 0, Values: append([]float64(nil), initial...)})
	return d, nil
}

// Options describes a Dynamics in terms of the two built-in variables plus
// a number of caller-defined extras.
type Options struct {
	ExtraStates  int
	ExtraNames   []string
	Derivatives  []Derivative
	InitialState []float64
	NumericalDt  float64
	MaxHistory   int
}

// DefaultOptions returns the stock two-variable garden.
func DefaultOptions() Options {
	return Options{
		Derivatives:  DefaultDerivatives(),
		InitialState: []float64{0, 0},
		NumericalDt:  DefaultNumericalDt,
		MaxHistory:   DefaultMaxHistory,
	}
}

// Build validates the options and constructs the Dynamics. The state count
// (2 + ExtraStates), name count (2 + len(ExtraNames)), derivative count and
// initial state length must agree.
func (o Options) Build() (*Dynamics, error) {
	if o.ExtraStates < 0 {
		return nil, configErr("negative extra state count %d", o.ExtraStates)
	}
	states := o.ExtraStates + 2
	names := len(o.ExtraNames) + 2
	if len(o.Derivatives) != states || names != states || len(o.InitialState) != states {
		return nil, configErr("number of states (%d), state names (%d), initial state length (%d) "+
			"and number of derivatives (%d) must all be equal",
			states, names, len(o.InitialState), len(o.Derivatives))
	}

	all := make([]string, 0, states)
	all = append(all, PlantLevelName, SoilWaterLevelName)
	all = append(all, o.ExtraNames...)
	return New(o.Derivatives, o.InitialState, all, o.NumericalDt, o.MaxHistory)
}

// Values returns a copy of the current state vector.
func (d *Dynamics) Values() []float64 {
	return append([]float64(nil), d.values...)
}

// Names returns a copy of the state labels.
func (d *Dynamics) Names() []string {
	return append([]string(nil), d.names...)
}

// Len returns the state dimension.
func (d *Dynamics) Len() int {
	return len(d.values)
}

// NumericalDt returns the integration step size.
func (d *Dynamics) NumericalDt() float64 {
	return d.numericalDt
}

// MaxHistory returns the number of samples the history retains.
func (d *Dynamics) MaxHistory() int {
	return d.history.Cap()
}

// Time returns the last recorded time.
func (d *Dynamics) Time() float64 {
	last, _ := d.history.Last()
	return last.Time
}

// State returns a snapshot of the current simulation state.
func (d *Dynamics) State() State {
	return State{
		Time:   d.Time(),
		Values: d.Values(),
		Names:  d.Names(),
		Input:  d.input,
	}
}

// History returns a copy of the retained samples, oldest first.
func (d *Dynamics) History() []Sample {
	return d.history.Snapshot()
}

// HistoryLen returns the number of retained samples.
func (d *Dynamics) HistoryLen() int {
	return d.history.Len()
}

// DxDt evaluates every derivative at (x, t, input).
func (d *Dynamics) DxDt(x []float64, t float64, input bool) []float64 {
	dx := make([]float64, len(d.derivatives))
	for i, ddt := range d.derivatives {
		dx[i] = ddt(x, t, input)
	}
	return dx
}

// rates adapts the derivative list to the solver, rejecting non-finite rates.
func (d *Dynamics) rates(input bool) rateFunc {
	return func(x []float64, t float64, dx []float64) error {
		for i, ddt := range d.derivatives {
			v := ddt(x, t, input)
			if !isFinite(v) {
				return &DivergenceError{Index: i, Name: d.names[i], Time: t, Value: v}
			}
			dx[i] = v
		}
		return nil
	}
}

// Advance integrates the system forward by duration with the input signal
// held constant. The trajectory is sampled every numerical dt (the endpoint
// is always included) and appended to history; the first sample, which
// repeats the current state, is skipped.
//
// Durations needing more than MaxSteps steps, or too small to move the
// clock at the current time, fail with ErrInvalidInput. On error nothing is
// modified.
func (d *Dynamics) Advance(input bool, duration float64) error {
	if !(duration > 0) || math.IsInf(duration, 1) {
		return fmt.Errorf("%w: duration must be positive and finite, got %v", ErrInvalidInput, duration)
	}

	if steps := duration / d.numericalDt; steps > MaxSteps {
		return fmt.Errorf("%w: duration %v needs %.3g steps of %v, limit is %d",
			ErrInvalidInput, duration, steps, d.numericalDt, MaxSteps)
	}

	t0 := d.Time()
	grid := timeGrid(t0, duration, d.numericalDt)
	for i := 1; i < len(grid); i++ {
		if !(grid[i] > grid[i-1]) {
			return fmt.Errorf("%w: duration %v is below the time resolution at t=%v",
				ErrInvalidInput, duration, t0)
		}
	}
	rows, err := integrate(d.rates(input), d.values, grid)
	if err != nil {
		return err
	}
	for i, row := range rows {
		for j, v := range row {
			if !isFinite(v) {
				return &DivergenceError{Index: j, Name: d.names[j], Time: grid[i], Value: v}
			}
		}
	}

	d.values = append(d.values[:0], rows[len(rows)-1]...)
	d.input = input
	for i := 1; i < len(rows); i++ {
		d.history.Append(Sample{Time: grid[i], Values: rows[i]})
	}
	return nil
}

// RegisterEvent adds an event to be evaluated on every Update.
func (d *Dynamics) RegisterEvent(e *Event) {
	d.events = append(d.events, e)
}

// AddEvent builds an event from its parts and registers it.
func (d *Dynamics) AddEvent(name string, predicate Predicate, desc Descriptor) (*Event, error) {
	e, err := NewEvent(name, predicate, desc)
	if err != nil {
		return nil, err
	}
	d.RegisterEvent(e)
	return e, nil
}

// Events returns the registered events in registration order.
func (d *Dynamics) Events() []*Event {
	return append([]*Event(nil), d.events...)
}

// Update evaluates every registered event against the current state and
// returns the draws due this tick, in registration order.
func (d *Dynamics) Update() []Draw {
	s := d.State()
	var draws []Draw
	for _, e := range d.events {
		draws = append(draws, e.Tick(s)...)
	}
	return draws
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
