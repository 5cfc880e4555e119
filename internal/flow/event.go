package flow

import (
	"fmt"

	"github.com/vovakirdan/flow-garden/internal/core"
)

// Handle is an opaque asset token. The core stores and returns handles but
// never interprets them.
type Handle string

// Predicate decides whether an event fires for the given state.
type Predicate func(State) bool

// Descriptor says what an event shows while it is active.
type Descriptor struct {
	Assets    []Handle
	Anchors   []core.Point // parallel to Assets
	Cycle     bool         // show one asset at a time instead of all at once
	FrameRate int          // active ticks each asset is held when cycling
}

// Draw is one asset the host should place this tick.
type Draw struct {
	Event  string
	Index  int
	Handle Handle
	Anchor core.Point
}

// Event binds a predicate to a presentation descriptor. It is dormant or
// active, and while active and cycling it walks a cursor through the assets.
type Event struct {
	name      string
	predicate Predicate
	desc      Descriptor
	cursor    int
	active    bool
}

// NewEvent validates desc and creates an event. A zero FrameRate means 1.
func NewEvent(name string, predicate Predicate, desc Descriptor) (*Event, error) {
	if predicate == nil {
		return nil, configErr("event %q has no predicate", name)
	}
	if len(desc.Assets) == 0 {
		return nil, configErr("event %q has no assets", name)
	}
	if len(desc.Anchors) != len(desc.Assets) {
		return nil, configErr("event %q has %d assets but %d anchors", name, len(desc.Assets), len(desc.Anchors))
	}
	if desc.FrameRate == 0 {
		desc.FrameRate = 1
	}
	if desc.FrameRate < 0 {
		return nil, configErr("event %q has negative frame rate %d", name, desc.FrameRate)
	}

	desc.Assets = append([]Handle(nil), desc.Assets...)
	desc.Anchors = append([]core.Point(nil), desc.Anchors...)
	return &Event{name: name, predicate: predicate, desc: desc}, nil
}

// Name returns the event label.
func (e *Event) Name() string { return e.name }

// Descriptor returns a copy of the presentation descriptor.
func (e *Event) Descriptor() Descriptor {
	d := e.desc
	d.Assets = append([]Handle(nil), d.Assets...)
	d.Anchors = append([]core.Point(nil), d.Anchors...)
	return d
}

// Active reports the most recent predicate result.
func (e *Event) Active() bool { return e.active }

// Cursor returns the cycle position in [0, len(assets)*frame rate).
func (e *Event) Cursor() int { return e.cursor }

// Evaluate applies the predicate and remembers the result.
func (e *Event) Evaluate(s State) bool {
	e.active = e.predicate(s)
	return e.active
}

// AdvanceCursor returns the asset indices due this tick. A non-cycling event
// returns every index. A cycling event steps its cursor first and returns
// the single index it now points at, so each asset is held for FrameRate
// calls. It returns nil while the event is dormant.
func (e *Event) AdvanceCursor() []int {
	if !e.active {
		return nil
	}
	if !e.desc.Cycle {
		all := make([]int, len(e.desc.Assets))
		for i := range all {
			all[i] = i
		}
		return all
	}
	e.cursor = (e.cursor + 1) % (len(e.desc.Assets) * e.desc.FrameRate)
	return []int{e.cursor / e.desc.FrameRate}
}

// Tick evaluates the event against s and resolves the due indices into draws.
func (e *Event) Tick(s State) []Draw {
	if !e.Evaluate(s) {
		return nil
	}
	idx := e.AdvanceCursor()
	draws := make([]Draw, len(idx))
	for i, k := range idx {
		draws[i] = Draw{Event: e.name, Index: k, Handle: e.desc.Assets[k], Anchor: e.desc.Anchors[k]}
	}
	return draws
}

func (e *Event) String() string {
	return fmt.Sprintf("%s(active=%t cursor=%d)", e.name, e.active, e.cursor)
}
