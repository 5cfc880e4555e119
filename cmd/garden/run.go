package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/core"
	"github.com/vovakirdan/flow-garden/internal/flow"
	"github.com/vovakirdan/flow-garden/internal/platform/headless"
	"github.com/vovakirdan/flow-garden/internal/registry"
)

var (
	flagConfig      string
	flagFrames      int
	flagUpdateEvery int
	flagTimestep    float64
	flagTickRate    int
	flagRealtime    bool
	flagHistory     int
	flagQuiet       bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario",
	Long: `Run the specified scenario headlessly.

The host loop counts frames and advances the simulation every
--update-every frames by --timestep units of simulated time. The input
signal (watering / rain) follows the scenario's scripted input schedule.
Each update prints the state and the scenery that would be drawn.

Press Ctrl+C to stop early.

Examples:
  garden run garden
  garden run garden --frames 0 --realtime
  garden run pipes --update-every 5 --timestep 0.5
  garden run garden --config ./my-garden.yaml --history 15`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scenario config YAML")
	runCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (0 with --realtime = until Ctrl+C; default from config)")
	runCmd.Flags().IntVar(&flagUpdateEvery, "update-every", 0, "Advance the simulation every N frames (default from config)")
	runCmd.Flags().Float64Var(&flagTimestep, "timestep", 0, "Simulated time per update (default from config)")
	runCmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "Frames per second with --realtime (default from config)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock")
	runCmd.Flags().IntVar(&flagHistory, "history", 0, "Print the newest N history samples at the end")
	runCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Do not print a line per update")
}

func runRun(cmd *cobra.Command, args []string) {
	id := args[0]
	logger := newLogger()

	// Check if scenario exists
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'garden list' to see available scenarios.")
		os.Exit(1)
	}

	cfg, err := config.Load(id, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dyn, err := registry.Create(id, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scenario: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig(cmd, cfg.Loop)
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	var reporter headless.Reporter
	if !flagQuiet {
		reporter = headless.NewTextReporter(os.Stdout, styled)
	}

	runLogger := logger.With("run", uuid.NewString(), "scenario", id)
	runLogger.Info("starting",
		"states", dyn.Len(),
		"events", len(dyn.Events()),
		"dt", dyn.NumericalDt(),
		"max_history", dyn.MaxHistory(),
		"frames", rt.Frames,
		"update_every", rt.UpdateEvery,
		"timestep", rt.FlowTimestep,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := headless.NewRunner(dyn, config.NewInputSchedule(cfg.Input), rt, reporter, runLogger)
	sum, runErr := runner.Run(ctx)

	if flagHistory > 0 {
		fmt.Println(headless.RenderHistory(dyn.History(), dyn.Names(), flagHistory, styled))
	}
	fmt.Print(headless.RenderSummary(sum, styled))

	if runErr != nil {
		if errors.Is(runErr, flow.ErrNumericalDivergence) {
			fmt.Fprintf(os.Stderr, "Scenario halted: %v\n", runErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", runErr)
		}
		stop()
		os.Exit(1)
	}
}

// runtimeConfig merges the scenario's loop settings with explicit flags.
func runtimeConfig(cmd *cobra.Command, loop config.LoopConfig) core.RuntimeConfig {
	rt := core.RuntimeConfig{
		TickRate:     loop.TickRate,
		UpdateEvery:  loop.UpdateEvery,
		FlowTimestep: loop.FlowTimestep,
		Frames:       loop.Frames,
		Realtime:     flagRealtime,
	}

	flags := cmd.Flags()
	if flags.Changed("frames") {
		rt.Frames = flagFrames
	}
	if flags.Changed("update-every") {
		rt.UpdateEvery = flagUpdateEvery
	}
	if flags.Changed("timestep") {
		rt.FlowTimestep = flagTimestep
	}
	if flags.Changed("tick-rate") {
		rt.TickRate = flagTickRate
	}
	return rt.Normalize()
}
