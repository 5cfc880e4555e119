package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/registry"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <scenario>",
	Short: "Print the default config of a scenario",
	Long: `Prints the embedded default YAML for a scenario. Save it to
~/.garden/configs/<scenario>.yaml or ./configs/<scenario>.yaml to override
the defaults, or pass it with 'garden run --config'.`,
	Args: cobra.ExactArgs(1),
	Run:  runDefaults,
}

func runDefaults(cmd *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'garden list' to see available scenarios.")
		os.Exit(1)
	}

	data := config.GetDefaultYAML(id)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: scenario %q has no default config\n", id)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
