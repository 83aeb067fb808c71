package scale

import (
	"errors"

	"github.com/DragonZX/ZedGraph/xdate"
)

// Target tick counts used when PickConfig.TargetSteps is zero. Horizontal
// and vertical axes are separate knobs so panes can trade label room for
// data room per orientation.
const (
	DefaultTargetStepsH = 7.0
	DefaultTargetStepsV = 7.0

	// DefaultTargetMinorSteps is the subdivision target for minor steps on
	// numeric scales.
	DefaultTargetMinorSteps = 5.0
)

// MaxTickCount caps the number of major ticks any scale reports. The cap is
// a deliberate guard against runaway tick generation on malformed ranges,
// not an error: counts beyond it clamp silently.
const MaxTickCount = 500

// degenerateSpan is the width below which a range counts as zero and gets
// padded before step selection.
const degenerateSpan = 1e-20

var (
	// ErrUnitOrder reports a manually configured minor unit coarser than
	// the major unit.
	ErrUnitOrder = errors.New("scale: minor unit coarser than major unit")

	// ErrNonPositiveStep reports a manually configured step that is zero
	// or negative.
	ErrNonPositiveStep = errors.New("scale: step must be positive")
)

// Unit identifies a calendar unit. The order runs fine to coarse, so
// comparing two units compares their natural durations.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unit(?)"
}

// daysPer is the nominal span of one unit in days as used by step
// arithmetic. Months count 30 days here; the minor-start walk deliberately
// uses a shorter month (see minorStartDays).
func daysPer(u Unit) float64 {
	switch u {
	case Year:
		return 365
	case Month:
		return 30
	case Day:
		return 1
	case Hour:
		return 1 / xdate.HoursPerDay
	case Minute:
		return 1 / xdate.MinutesPerDay
	default:
		return 1 / xdate.SecondsPerDay
	}
}

// Tick is one labeled axis graduation.
type Tick struct {
	Value float64
	Label string
}

// LabelEstimator reports how many tick labels fit along an axis without
// touching. Implementations typically measure rendered label widths; see
// package labelfit.
type LabelEstimator interface {
	MaxLabels() int
}

// PickConfig carries the per-pass inputs to Pick.
//
// TargetSteps is the desired number of major steps across the range; zero
// selects the orientation default. A non-nil Estimator enables
// label-overlap refinement: when fewer labels fit than the chosen step
// would produce, the step is re-picked with the estimate as the target.
type PickConfig struct {
	TargetSteps float64
	Vertical    bool
	Estimator   LabelEstimator
}

// Scale is the surface an axis draws against, shared by the date, linear,
// and log scales.
type Scale interface {
	// Range returns the current scale ends, min first.
	Range() (min, max float64)
	// Pick finalizes the scale for rendering.
	Pick(cfg PickConfig) error
	// MajorTicks enumerates the labeled graduations inside the range.
	MajorTicks() []Tick
	// MinorTicks enumerates the unlabeled subdivisions inside the range.
	MinorTicks() []float64
	// Label renders one axis value.
	Label(v float64) string
}
