// Package registry provides a global registry for scenario factories.
// Scenarios register themselves in init() functions, allowing the host
// to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/flow"
)

// Factory builds a ready-to-run simulation, events included, from a
// scenario configuration.
type Factory func(cfg config.ScenarioConfig) (*flow.Dynamics, error)

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from a scenario package's init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, ScenarioInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the scenario with the given ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, cfg config.ScenarioConfig) (*flow.Dynamics, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scenario %q", id)
	}

	d, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: building %q: %w", id, err)
	}
	return d, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
