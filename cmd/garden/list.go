package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flow-garden/internal/platform/headless"
	"github.com/vovakirdan/flow-garden/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows the scenarios compiled into garden with their ids.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := registry.List()
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stderr, "No scenarios registered.")
		return
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Println(headless.RenderScenarios(scenarios, styled))
	fmt.Println("Run 'garden run <id>' to run a scenario, 'garden defaults <id>' to see its config.")
}
