package config

// InputSchedule replays a repeating script of input segments, one value per
// simulation update. An empty schedule never presses.
type InputSchedule struct {
	segments []InputSegment
	period   int
}

// NewInputSchedule builds a schedule from segments. Segments with no updates
// are skipped.
func NewInputSchedule(segments []InputSegment) InputSchedule {
	s := InputSchedule{}
	for _, seg := range segments {
		if seg.Updates < 1 {
			continue
		}
		s.segments = append(s.segments, seg)
		s.period += seg.Updates
	}
	return s
}

// Period returns the number of updates before the script repeats.
func (s InputSchedule) Period() int {
	return s.period
}

// Pressed returns the input signal for the given zero-based update.
func (s InputSchedule) Pressed(update int) bool {
	if s.period == 0 || update < 0 {
		return false
	}
	pos := update % s.period
	for _, seg := range s.segments {
		if pos < seg.Updates {
			return seg.Pressed
		}
		pos -= seg.Updates
	}
	return false
}
