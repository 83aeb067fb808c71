package zedgraph

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/DragonZX/ZedGraph/scale"
)

// Axis pairs a tick scale with its presentation details. NewGraphPane
// installs a date scale on X and a linear scale on Y; swap Scale for any
// other scale.Scale (for example scale.NewLog for a log Y axis) before
// the first Draw.
type Axis struct {
	// Scale picks tick positions and formats labels.
	Scale scale.Scale

	// Title is drawn along the axis when non-empty.
	Title string

	// Labels overrides the scale's label text when non-nil. The value
	// passed is the tick position in axis units.
	Labels func(v float64) string
}

// label returns the text for the tick at v.
func (a *Axis) label(v float64) string {
	if a.Labels != nil {
		return a.Labels(v)
	}
	return a.Scale.Label(v)
}

// labelCuller tracks pixel spans covered by labels already drawn, so a
// label that would overlap an earlier one is dropped instead of drawn
// on top of it.
type labelCuller struct {
	used bitset.BitSet
	max  int
}

func newLabelCuller(lengthPx int) *labelCuller {
	return &labelCuller{max: lengthPx}
}

// claim reserves the pixel span [lo, hi]. It reports false, reserving
// nothing, when any pixel in the span is already taken or the span lies
// outside the axis.
func (c *labelCuller) claim(lo, hi int) bool {
	if lo < 0 {
		lo = 0
	}
	if hi >= c.max {
		hi = c.max - 1
	}
	if hi < lo {
		return false
	}
	for px := lo; px <= hi; px++ {
		if c.used.Test(uint(px)) {
			return false
		}
	}
	for px := lo; px <= hi; px++ {
		c.used.Set(uint(px))
	}
	return true
}
