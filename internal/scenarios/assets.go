package scenarios

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flow-garden/internal/core"
	"github.com/vovakirdan/flow-garden/internal/flow"
)

// ScreenSize is the side of the square presentation surface the stock
// assets are laid out for. Sprite sheets are twice that in each direction
// and hold four frames.
const ScreenSize = 640

var (
	screen = core.NewRect(0, 0, ScreenSize, ScreenSize)
	sheet  = core.NewRect(0, 0, 2*ScreenSize, 2*ScreenSize)
	origin = screen.Origin()
)

// still is a single full-screen image placed at the origin.
func still(image string) ([]flow.Handle, []core.Point) {
	return []flow.Handle{flow.Handle(image)}, []core.Point{origin}
}

// frames addresses the four quarters of a sprite sheet as separate handles,
// all drawn at the origin. The handle format is "<image>@<x>,<y>,<w>x<h>".
func frames(image string) ([]flow.Handle, []core.Point) {
	quarters := sheet.Quarters()
	handles := make([]flow.Handle, len(quarters))
	anchors := make([]core.Point, len(quarters))
	for i, q := range quarters {
		handles[i] = flow.Handle(fmt.Sprintf("%s@%s", image, q))
		anchors[i] = origin
	}
	return handles, anchors
}

// firstFrame is the top-left quarter of a sprite sheet.
func firstFrame(image string) ([]flow.Handle, []core.Point) {
	handles, anchors := frames(image)
	return handles[:1], anchors[:1]
}

// vegetationStages names the plant-level windows in ascending order.
var vegetationStages = []string{"grass", "small_plants", "med_plants", "big_plants"}

// vegetationEvents shows one image per plant-level window. Thresholds
// t0 < t1 < ... split the line into (-inf, t0], (t0, t1], ..., (tn, inf).
func vegetationEvents(thresholds []float64) []eventSpec {
	bounds := make([]float64, 0, len(thresholds)+2)
	bounds = append(bounds, math.Inf(-1))
	bounds = append(bounds, thresholds...)
	bounds = append(bounds, math.Inf(1))

	specs := make([]eventSpec, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		name := fmt.Sprintf("stage_%d", i)
		if len(bounds)-1 == len(vegetationStages) {
			name = vegetationStages[i]
		}
		assets, anchors := still(name + ".png")
		specs = append(specs, eventSpec{
			name:      name,
			predicate: stateWindow(flow.PlantLevelIdx, flow.Interval{Lo: bounds[i], Hi: bounds[i+1]}),
			desc:      flow.Descriptor{Assets: assets, Anchors: anchors, Cycle: true, FrameRate: 1},
		})
	}
	return specs
}

// stateWindow fires while state[idx] lies in iv.
func stateWindow(idx int, iv flow.Interval) flow.Predicate {
	return func(s flow.State) bool {
		return idx < len(s.Values) && iv.Contains(s.Values[idx])
	}
}

func pressed(s flow.State) bool    { return s.Input }
func notPressed(s flow.State) bool { return !s.Input }

// inputEvents pairs a cycling sheet shown while the input is held with a
// still frame shown while it is released.
func inputEvents(onName, onSheet, offName, offSheet string) []eventSpec {
	onAssets, onAnchors := frames(onSheet)
	offAssets, offAnchors := firstFrame(offSheet)
	return []eventSpec{
		{
			name:      offName,
			predicate: notPressed,
			desc:      flow.Descriptor{Assets: offAssets, Anchors: offAnchors},
		},
		{
			name:      onName,
			predicate: pressed,
			desc:      flow.Descriptor{Assets: onAssets, Anchors: onAnchors, Cycle: true, FrameRate: 1},
		},
	}
}
