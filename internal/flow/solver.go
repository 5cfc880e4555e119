package flow

import "math"

// gridEpsilon absorbs float noise when dividing a duration into steps,
// so 1.0/0.1 yields 10 steps rather than 11.
const gridEpsilon = 1e-9

// MaxSteps bounds the number of integration steps a single Advance may take.
const MaxSteps = 1_000_000

// rateFunc fills dx with the system derivative at (x, t).
type rateFunc func(x []float64, t float64, dx []float64) error

// timeGrid returns sample times from t0 to t0+duration inclusive, spaced by
// dt except for a possibly shorter final interval.
func timeGrid(t0, duration, dt float64) []float64 {
	steps := duration / dt
	n := int(math.Ceil(steps - gridEpsilon*steps))
	if n < 1 {
		n = 1
	}

	end := t0 + duration
	grid := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		grid = append(grid, t0+float64(i)*dt)
	}
	if len(grid) > 1 && grid[len(grid)-1] >= end {
		grid = grid[:len(grid)-1]
	}
	return append(grid, end)
}

// rk4 is a classical fourth-order Runge-Kutta stepper with reusable scratch.
type rk4 struct {
	k1, k2, k3, k4 []float64
	tmp            []float64
}

func newRK4(n int) *rk4 {
	return &rk4{
		k1:  make([]float64, n),
		k2:  make([]float64, n),
		k3:  make([]float64, n),
		k4:  make([]float64, n),
		tmp: make([]float64, n),
	}
}

// step advances x from t by h into out. x and out may not alias.
func (r *rk4) step(f rateFunc, x []float64, t, h float64, out []float64) error {
	if err := f(x, t, r.k1); err != nil {
		return err
	}
	for j := range x {
		r.tmp[j] = x[j] + h/2*r.k1[j]
	}
	if err := f(r.tmp, t+h/2, r.k2); err != nil {
		return err
	}
	for j := range x {
		r.tmp[j] = x[j] + h/2*r.k2[j]
	}
	if err := f(r.tmp, t+h/2, r.k3); err != nil {
		return err
	}
	for j := range x {
		r.tmp[j] = x[j] + h*r.k3[j]
	}
	if err := f(r.tmp, t+h, r.k4); err != nil {
		return err
	}
	for j := range x {
		out[j] = x[j] + h/6*(r.k1[j]+2*r.k2[j]+2*r.k3[j]+r.k4[j])
	}
	return nil
}

// integrate runs rk4 across grid starting from x0 and returns one row per
// grid point; row 0 is a copy of x0.
func integrate(f rateFunc, x0 []float64, grid []float64) ([][]float64, error) {
	rows := make([][]float64, len(grid))
	rows[0] = append([]float64(nil), x0...)

	stepper := newRK4(len(x0))
	for i := 1; i < len(grid); i++ {
		rows[i] = make([]float64, len(x0))
		if err := stepper.step(f, rows[i-1], grid[i-1], grid[i]-grid[i-1], rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
