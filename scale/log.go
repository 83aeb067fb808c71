package scale

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Log is a base-10 logarithmic scale. Major ticks sit on decades, minor
// ticks on the 2..9 multiples inside each decade, and labels carry SI
// prefixes ("100 m", "10 k"). Both ends must be positive; non-positive
// inputs are forced into a usable decade.
type Log struct {
	Min, Max float64

	MinAuto, MaxAuto bool
}

// NewLog returns a fully automatic log scale over [min, max].
func NewLog(min, max float64) *Log {
	return &Log{Min: min, Max: max, MinAuto: true, MaxAuto: true}
}

var _ Scale = (*Log)(nil)

// Range returns the scale ends, min first.
func (l *Log) Range() (min, max float64) { return l.Min, l.Max }

// Pick snaps the automatic ends outward to whole decades.
func (l *Log) Pick(cfg PickConfig) error {
	if l.Max <= 0 {
		l.Max = 10
	}
	if l.Min <= 0 {
		l.Min = l.Max / 1e4
	}
	if l.Max-l.Min < degenerateSpan {
		if l.MinAuto {
			l.Min /= 10
		}
		if l.MaxAuto {
			l.Max *= 10
		}
	}
	if l.MinAuto {
		l.Min = math.Pow(10, math.Floor(math.Log10(l.Min)+ceilBias))
	}
	if l.MaxAuto {
		l.Max = math.Pow(10, math.Ceil(math.Log10(l.Max)-ceilBias))
	}
	return nil
}

// TickCount returns the number of decade ticks, clamped to
// [1, MaxTickCount].
func (l *Log) TickCount() int {
	n := math.Log10(l.Max) - math.Log10(l.Min) + 1.001
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > MaxTickCount {
		return MaxTickCount
	}
	return int(n)
}

// MajorTicks enumerates the decade ticks inside the range.
func (l *Log) MajorTicks() []Tick {
	count := l.TickCount()
	ticks := make([]Tick, 0, count)
	v := math.Pow(10, math.Ceil(math.Log10(l.Min)-ceilBias))
	for i := 0; i < count && v <= l.Max*(1+1e-9); i++ {
		ticks = append(ticks, Tick{Value: v, Label: l.Label(v)})
		v *= 10
	}
	return ticks
}

// MinorTicks enumerates the 2..9 multiples of each decade inside the
// range.
func (l *Log) MinorTicks() []float64 {
	vals := make([]float64, 0, 32)
	decade := math.Pow(10, math.Floor(math.Log10(l.Min)+ceilBias))
	for n := 0; decade <= l.Max && n < maxMinorTicks; n++ {
		for k := 2.0; k <= 9; k++ {
			v := k * decade
			if v < l.Min*(1-1e-9) {
				continue
			}
			if v > l.Max*(1+1e-9) {
				break
			}
			vals = append(vals, v)
		}
		decade *= 10
	}
	return vals
}

// Label renders a decade value with an SI prefix.
func (l *Log) Label(v float64) string {
	return strings.TrimSpace(humanize.SI(v, ""))
}

// Transform maps v into log10 space. Renderers check for this method so
// decades space evenly along the axis. Non-positive values clamp to the
// smallest positive float rather than producing infinities.
func (l *Log) Transform(v float64) float64 {
	if v <= 0 {
		v = math.SmallestNonzeroFloat64
	}
	return math.Log10(v)
}
