// garden runs plant/soil-water flow scenarios headlessly in the terminal.
//
// Usage:
//
//	garden list                  - List available scenarios
//	garden run <scenario>        - Run a scenario and print every update
//	garden defaults <scenario>   - Print a scenario's default YAML config
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vovakirdan/flow-garden/internal/scenarios"
)

var (
	// Global flags
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garden",
	Short: "Flow Garden - simulate plants and soil water",
	Long: `Flow Garden advances a small plant/soil-water model by numerical
integration and reports which scenery each update would show.

Available commands:
  list      - Show all available scenarios
  run       - Run a scenario
  defaults  - Print the default config of a scenario

Examples:
  garden list
  garden run garden
  garden run pipes --frames 2000 --history 20
  garden defaults garden > my-garden.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger creates the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "garden",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
