package scenarios

import (
	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/flow"
	"github.com/vovakirdan/flow-garden/internal/registry"
)

func init() {
	registry.Register("garden", "Rain Garden", NewGarden)
}

// NewGarden builds the stock scenario: vegetation images follow the plant
// level and clouds rain while the input is held.
func NewGarden(cfg config.ScenarioConfig) (*flow.Dynamics, error) {
	events := vegetationEvents(cfg.Vegetation.Thresholds)
	events = append(events, inputEvents("rain", "clouds1.png", "no_rain", "clouds0.png")...)
	return build(cfg, events)
}
