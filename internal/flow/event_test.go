package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flow-garden/internal/core"
)

func always(on *bool) Predicate {
	return func(State) bool { return *on }
}

func handles(n int) ([]Handle, []core.Point) {
	assets := make([]Handle, n)
	anchors := make([]core.Point, n)
	for i := range assets {
		assets[i] = Handle(string(rune('a' + i)))
		anchors[i] = core.P(i, 0)
	}
	return assets, anchors
}

func TestNewEventValidation(t *testing.T) {
	assets, anchors := handles(2)
	on := true

	_, err := NewEvent("none", nil, Descriptor{Assets: assets, Anchors: anchors})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewEvent("empty", always(&on), Descriptor{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewEvent("mismatch", always(&on), Descriptor{Assets: assets, Anchors: anchors[:1]})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewEvent("negative", always(&on), Descriptor{Assets: assets, Anchors: anchors, FrameRate: -2})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	e, err := NewEvent("ok", always(&on), Descriptor{Assets: assets, Anchors: anchors})
	require.NoError(t, err)
	assert.Equal(t, 1, e.Descriptor().FrameRate, "zero frame rate defaults to 1")
}

func TestCyclingEventHoldsEachAsset(t *testing.T) {
	const (
		k = 3
		r = 2
	)
	assets, anchors := handles(k)
	on := true
	e, err := NewEvent("rain", always(&on), Descriptor{Assets: assets, Anchors: anchors, Cycle: true, FrameRate: r})
	require.NoError(t, err)

	var seen []int
	for i := 0; i < 2*k*r; i++ {
		draws := e.Tick(State{})
		require.Len(t, draws, 1)
		seen = append(seen, draws[0].Index)
		assert.Less(t, e.Cursor(), k*r)
	}

	// The cursor steps before it is read, so the first active tick lands on
	// cursor 1 and index 0 is only held once until the first wrap.
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0, 1, 1, 2, 2, 0}, seen)
	assert.Equal(t, seen[:k*r], seen[k*r:], "cycle wraps after k*r active ticks")
}

func TestCyclingEventFrameRateOne(t *testing.T) {
	assets, anchors := handles(4)
	on := true
	e, err := NewEvent("pipe", always(&on), Descriptor{Assets: assets, Anchors: anchors, Cycle: true, FrameRate: 1})
	require.NoError(t, err)

	var seen []Handle
	for i := 0; i < 5; i++ {
		draws := e.Tick(State{})
		require.Len(t, draws, 1)
		seen = append(seen, draws[0].Handle)
	}
	assert.Equal(t, []Handle{"b", "c", "d", "a", "b"}, seen)
}

func TestDormantEventKeepsCursor(t *testing.T) {
	assets, anchors := handles(3)
	on := true
	e, err := NewEvent("rain", always(&on), Descriptor{Assets: assets, Anchors: anchors, Cycle: true, FrameRate: 1})
	require.NoError(t, err)

	e.Tick(State{})
	e.Tick(State{})
	require.Equal(t, 2, e.Cursor())

	on = false
	for i := 0; i < 5; i++ {
		assert.Empty(t, e.Tick(State{}))
		assert.False(t, e.Active())
		assert.Nil(t, e.AdvanceCursor())
	}
	assert.Equal(t, 2, e.Cursor())

	on = true
	draws := e.Tick(State{})
	require.Len(t, draws, 1)
	assert.Equal(t, 0, draws[0].Index)
}

func TestStaticEventReportsAllAssets(t *testing.T) {
	assets, anchors := handles(3)
	on := true
	e, err := NewEvent("scene", always(&on), Descriptor{Assets: assets, Anchors: anchors})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		draws := e.Tick(State{})
		require.Len(t, draws, 3)
		for j, d := range draws {
			assert.Equal(t, j, d.Index)
			assert.Equal(t, assets[j], d.Handle)
			assert.Equal(t, anchors[j], d.Anchor)
			assert.Equal(t, "scene", d.Event)
		}
	}
	assert.Equal(t, 0, e.Cursor())

	on = false
	assert.Empty(t, e.Tick(State{}))
}

func TestDynamicsUpdate(t *testing.T) {
	opts := DefaultOptions()
	opts.NumericalDt = 0.1
	d, err := opts.Build()
	require.NoError(t, err)

	raining := func(s State) bool { return s.Input }
	dry := func(s State) bool { return !s.Input }
	wilted := func(s State) bool {
		return Interval{Lo: -100, Hi: -0.5}.Contains(s.Values[PlantLevelIdx])
	}

	_, err = d.AddEvent("rain", raining, Descriptor{
		Assets: []Handle{"rain#0", "rain#1"}, Anchors: []core.Point{{}, {}}, Cycle: true, FrameRate: 1,
	})
	require.NoError(t, err)
	_, err = d.AddEvent("no_rain", dry, Descriptor{Assets: []Handle{"clouds"}, Anchors: []core.Point{{}}})
	require.NoError(t, err)
	_, err = d.AddEvent("wilted", wilted, Descriptor{Assets: []Handle{"wilt"}, Anchors: []core.Point{core.P(4, 4)}})
	require.NoError(t, err)
	require.Len(t, d.Events(), 3)

	require.NoError(t, d.Advance(false, 1))
	draws := d.Update()
	require.Len(t, draws, 2)
	assert.Equal(t, Handle("clouds"), draws[0].Handle)
	assert.Equal(t, Handle("wilt"), draws[1].Handle)
	assert.Equal(t, core.P(4, 4), draws[1].Anchor)

	require.NoError(t, d.Advance(true, 0.1))
	draws = d.Update()
	require.Len(t, draws, 2)
	assert.Equal(t, Handle("rain#1"), draws[0].Handle)
	assert.Equal(t, "wilted", draws[1].Event)
}
