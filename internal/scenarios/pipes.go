package scenarios

import (
	"github.com/vovakirdan/flow-garden/internal/config"
	"github.com/vovakirdan/flow-garden/internal/flow"
	"github.com/vovakirdan/flow-garden/internal/registry"
)

func init() {
	registry.Register("pipes", "Irrigation Pipes", NewPipes)
}

// NewPipes builds the irrigation variant: the same vegetation stages, with a
// pipe that animates its flow while the input is held.
func NewPipes(cfg config.ScenarioConfig) (*flow.Dynamics, error) {
	events := vegetationEvents(cfg.Vegetation.Thresholds)
	events = append(events, inputEvents("pipe_flow", "pipe_low.png", "pipe_no_flow", "pipe.png")...)
	return build(cfg, events)
}
