package headless

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/core"
	"github.com/vovakirdan/flow-garden/internal/flow"
)

// Report describes one simulation update.
type Report struct {
	Frame  int // host frame that triggered the update, starting at 1
	Update int // zero-based update counter
	Input  bool
	State  flow.State
	Draws  []flow.Draw
}

// Reporter receives every update in order.
type Reporter interface {
	Report(r Report)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(r Report)

// Report calls f(r).
func (f ReporterFunc) Report(r Report) { f(r) }

// Summary is returned when the loop stops.
type Summary struct {
	Frames     int
	Updates    int
	Final      flow.State
	HistoryLen int
	Canceled   bool
}

// Runner owns the frame loop for one scenario.
type Runner struct {
	dyn      *flow.Dynamics
	schedule config.InputSchedule
	cfg      core.RuntimeConfig
	reporter Reporter
	logger   *log.Logger
}

// NewRunner creates a runner. A nil reporter discards reports and a nil
// logger uses the charmbracelet default logger.
func NewRunner(dyn *flow.Dynamics, schedule config.InputSchedule, cfg core.RuntimeConfig, reporter Reporter, logger *log.Logger) *Runner {
	if reporter == nil {
		reporter = ReporterFunc(func(Report) {})
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		dyn:      dyn,
		schedule: schedule,
		cfg:      cfg.Normalize(),
		reporter: reporter,
		logger:   logger,
	}
}

// Run steps frames until cfg.Frames is reached or ctx is canceled. Every
// UpdateEvery-th frame advances the simulation by FlowTimestep and evaluates
// the events. Cancellation is only observed between frames, never inside an
// integration. A simulation error stops the loop and is returned together
// with the summary up to that point.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	tk := newTicker(r.cfg.TickRate, r.cfg.Realtime)
	defer tk.stop()

	var sum Summary
	for frame := 1; r.cfg.Frames == 0 || frame <= r.cfg.Frames; frame++ {
		if err := tk.wait(ctx); err != nil {
			sum.Canceled = true
			r.logger.Info("run canceled", "frame", frame, "updates", sum.Updates)
			break
		}
		sum.Frames = frame

		if frame%r.cfg.UpdateEvery != 0 {
			continue
		}
		if err := r.update(frame, sum.Updates); err != nil {
			r.finish(&sum)
			return sum, err
		}
		sum.Updates++
	}

	r.finish(&sum)
	return sum, nil
}

func (r *Runner) update(frame, update int) error {
	input := r.schedule.Pressed(update)
	if err := r.dyn.Advance(input, r.cfg.FlowTimestep); err != nil {
		if errors.Is(err, flow.ErrNumericalDivergence) {
			r.logger.Warn("simulation diverged, halting", "frame", frame, "update", update, "err", err)
		} else {
			r.logger.Error("advance failed", "frame", frame, "update", update, "err", err)
		}
		return err
	}

	draws := r.dyn.Update()
	state := r.dyn.State()
	r.logger.Debug("update",
		"frame", frame,
		"t", state.Time,
		"input", input,
		"draws", len(draws),
	)
	r.reporter.Report(Report{
		Frame:  frame,
		Update: update,
		Input:  input,
		State:  state,
		Draws:  draws,
	})
	return nil
}

func (r *Runner) finish(sum *Summary) {
	sum.Final = r.dyn.State()
	sum.HistoryLen = r.dyn.HistoryLen()
}
