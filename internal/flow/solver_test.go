package flow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeGrid(t *testing.T) {
	tests := []struct {
		name     string
		t0       float64
		duration float64
		dt       float64
		points   int
		end      float64
	}{
		{"exact multiple", 0, 1, 0.1, 11, 1},
		{"from offset", 1, 1, 0.1, 11, 2},
		{"partial last step", 0, 0.35, 0.1, 5, 0.35},
		{"duration below dt", 0, 0.05, 0.1, 2, 0.05},
		{"duration equal dt", 2, 0.1, 0.1, 2, 2.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := timeGrid(tc.t0, tc.duration, tc.dt)
			require.Len(t, grid, tc.points)
			assert.Equal(t, tc.t0, grid[0])
			assert.InDelta(t, tc.end, grid[len(grid)-1], 1e-12)
			for i := 1; i < len(grid); i++ {
				assert.Greater(t, grid[i], grid[i-1])
			}
		})
	}
}

func TestRK4ExponentialDecay(t *testing.T) {
	decay := func(x []float64, _ float64, dx []float64) error {
		dx[0] = -x[0]
		return nil
	}

	rows, err := integrate(decay, []float64{1}, timeGrid(0, 1, 0.01))
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), rows[len(rows)-1][0], 1e-9)
}

func TestRK4TimeDependentRate(t *testing.T) {
	// dx/dt = 3t^2 integrates to t^3; RK4 is exact for cubics.
	cubic := func(_ []float64, t float64, dx []float64) error {
		dx[0] = 3 * t * t
		return nil
	}

	rows, err := integrate(cubic, []float64{0}, timeGrid(0, 2, 0.25))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, rows[len(rows)-1][0], 1e-9)
}
