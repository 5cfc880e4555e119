package flow

// Sample is one recorded point of the trajectory.
type Sample struct {
	Time   float64
	Values []float64
}

// clone returns a deep copy so callers never alias ring storage.
func (s Sample) clone() Sample {
	return Sample{Time: s.Time, Values: append([]float64(nil), s.Values...)}
}

// History is a bounded ring buffer of samples ordered by time.
// When full, appending drops the oldest sample.
type History struct {
	buf   []Sample
	start int // index of the oldest sample
	size  int
	limit int
}

// NewHistory creates an empty history that keeps at most limit samples.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum number of retained samples.
func (h *History) Cap() int {
	return h.limit
}

// Append records a sample, evicting from the front once the limit is hit.
// Storage grows lazily up to the limit.
func (h *History) Append(s Sample) {
	if h.size < h.limit {
		h.buf = append(h.buf, s)
		h.size++
		return
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % h.limit
}

// At returns the i-th retained sample, oldest first.
func (h *History) At(i int) Sample {
	if i < 0 || i >= h.size {
		panic("flow: history index out of range")
	}
	return h.buf[(h.start+i)%len(h.buf)]
}

// Last returns the newest sample.
func (h *History) Last() (Sample, bool) {
	if h.size == 0 {
		return Sample{}, false
	}
	return h.At(h.size - 1), true
}

// Snapshot returns a deep copy of all retained samples, oldest first.
func (h *History) Snapshot() []Sample {
	out := make([]Sample, h.size)
	for i := range out {
		out[i] = h.At(i).clone()
	}
	return out
}
