package scale

import (
	"math"

	"github.com/DragonZX/ZedGraph/xdate"
)

// serialEps is the slack used when comparing serial-day values that went
// through a calendar round trip: well under the engine's millisecond
// floor, well over float jitter at representable dates.
const serialEps = 1e-9

// maxMinorTicks bounds the minor tick walk the way MaxTickCount bounds the
// major one.
const maxMinorTicks = 5000

// Date is a calendar-aware scale over serial-day values.
//
// Min and Max are serial days (package xdate) and must satisfy Min <= Max;
// the engine does not check this precondition. Step is expressed in
// MajorUnit, MinorStep in MinorUnit. The Auto flags mark which fields Pick
// may overwrite; clearing a flag pins the field to its current value.
//
// Base, when not NaN, overrides computed tick alignment and is returned by
// BaseTick verbatim. NewDate leaves it NaN.
//
// Mag exists for parity with Linear and is forced to zero on every pick:
// dates never display with an engineering-notation multiplier.
type Date struct {
	Min, Max float64

	MinAuto, MaxAuto bool
	StepAuto         bool
	MinorStepAuto    bool
	FormatAuto       bool

	MajorUnit Unit
	MinorUnit Unit
	Step      float64
	MinorStep float64

	Base   float64
	Format string
	Mag    int
}

// NewDate returns a fully automatic date scale over [min, max].
func NewDate(min, max float64) *Date {
	return &Date{
		Min:           min,
		Max:           max,
		MinAuto:       true,
		MaxAuto:       true,
		StepAuto:      true,
		MinorStepAuto: true,
		FormatAuto:    true,
		MajorUnit:     Day,
		MinorUnit:     Day,
		Step:          1,
		MinorStep:     0.25,
		Base:          math.NaN(),
	}
}

var _ Scale = (*Date)(nil)

// Range returns the scale ends, min first.
func (d *Date) Range() (min, max float64) { return d.Min, d.Max }

// Validate reports conflicting manual settings: a pinned step that is not
// positive, or a pinned minor unit coarser than the pinned major unit.
// Automatic fields are exempt since Pick overwrites them. Min > Max is a
// documented precondition, not checked here.
func (d *Date) Validate() error {
	if !d.StepAuto && d.Step <= 0 {
		return ErrNonPositiveStep
	}
	if !d.MinorStepAuto && d.MinorStep <= 0 {
		return ErrNonPositiveStep
	}
	if !d.StepAuto && !d.MinorStepAuto && d.MinorUnit > d.MajorUnit {
		return ErrUnitOrder
	}
	return nil
}

// Pick finalizes the scale: degenerate ranges get padded, automatic steps
// get selected from the tier table, the step coarsens if the label
// estimator says fewer labels fit, and automatic range ends snap outward
// to whole units of the major step's unit.
func (d *Date) Pick(cfg PickConfig) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if d.Max-d.Min < degenerateSpan {
		pad := 0.2 * math.Max(math.Max(math.Abs(d.Min), math.Abs(d.Max)), 1)
		if d.MaxAuto {
			d.Max += pad
		}
		if d.MinAuto {
			d.Min -= pad
		}
	}

	target := cfg.TargetSteps
	if target <= 0 {
		target = DefaultTargetStepsH
		if cfg.Vertical {
			target = DefaultTargetStepsV
		}
	}

	d.apply(selectDateSteps(d.Max-d.Min, target), target)

	if cfg.Estimator != nil && d.StepAuto {
		if maxLabels := cfg.Estimator.MaxLabels(); maxLabels >= 1 && maxLabels < d.TickCount() {
			d.apply(selectDateSteps(d.Max-d.Min, float64(maxLabels)), float64(maxLabels))
		}
	}

	if d.MinAuto {
		d.Min = SnapToUnit(d.Min, d.MajorUnit, -1)
	}
	if d.MaxAuto {
		d.Max = SnapToUnit(d.Max, d.MajorUnit, +1)
	}
	d.Mag = 0

	count := d.TickCount()
	if count == MaxTickCount {
		slogger().Warn("scale: tick count clamped",
			"unit", d.MajorUnit, "step", d.Step, "min", d.Min, "max", d.Max)
	}
	slogger().Debug("scale: picked date scale",
		"min", d.Min, "max", d.Max,
		"unit", d.MajorUnit, "step", d.Step,
		"minorUnit", d.MinorUnit, "minorStep", d.MinorStep,
		"format", d.Format, "ticks", count)
	return nil
}

// apply copies a selection result onto the scale under the Auto gating.
// With a pinned major step but automatic minors, the minors derive from the
// pinned values instead of the tier's.
func (d *Date) apply(res StepSizes, targetSteps float64) {
	if d.StepAuto {
		d.MajorUnit = res.MajorUnit
		d.Step = res.Step
		if d.MinorStepAuto {
			d.MinorUnit = res.MinorUnit
			d.MinorStep = res.MinorStep
		}
	} else if d.MinorStepAuto {
		d.MinorUnit, d.MinorStep = deriveMinor(d.MajorUnit, d.Step, targetSteps)
	}
	if d.FormatAuto {
		d.Format = res.Format
	}
}

// BaseTick returns the first tick-aligned value at or after Min, or Base
// verbatim when the caller has set one.
func (d *Date) BaseTick() float64 {
	if !math.IsNaN(d.Base) {
		return d.Base
	}
	return SnapToUnit(d.Min, d.MajorUnit, +1)
}

// TickCount applies TickCount to the scale's own range and major step.
func (d *Date) TickCount() int {
	return TickCount(d.Min, d.Max, d.MajorUnit, d.Step)
}

// MajorTicks enumerates the labeled ticks from the base tick to Max.
func (d *Date) MajorTicks() []Tick {
	base := d.BaseTick()
	count := d.TickCount()
	ticks := make([]Tick, 0, count)
	for i := 0; i < count; i++ {
		v := MajorTickValue(base, float64(i), d.MajorUnit, d.Step)
		if v > d.Max+serialEps {
			break
		}
		ticks = append(ticks, Tick{Value: v, Label: d.Label(v)})
	}
	return ticks
}

// MinorTicks enumerates the minor tick values inside [Min, Max]. The walk
// starts one conservative stride before Min so the first visible minor
// tick is never skipped, and discards values outside the range.
func (d *Date) MinorTicks() []float64 {
	base := d.BaseTick()
	start := MinorTickStartIndex(base, d.Min, d.MinorUnit, d.MinorStep)
	vals := make([]float64, 0, 32)
	for i := start; i-start < maxMinorTicks; i++ {
		v := MinorTickValue(base, i, d.MinorUnit, d.MinorStep)
		if v > d.Max+serialEps {
			break
		}
		if v < d.Min-serialEps {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// Label renders one tick value with the scale's format.
func (d *Date) Label(v float64) string {
	return xdate.Format(v, d.Format)
}

// SnapToUnit rounds a serial-day value to a whole boundary of unit.
// Negative direction rounds down; positive rounds up but keeps values that
// already sit on a boundary. Rounding zeroes every calendar field finer
// than unit, so snapping 15-May down at month grain gives 1-May.
func SnapToUnit(date float64, unit Unit, direction int) float64 {
	c := zeroBelow(xdate.ToCalendar(date), unit)
	aligned := xdate.FromCalendar(c)
	if direction > 0 && aligned < date-serialEps {
		aligned = xdate.FromCalendar(bumpUnit(c, unit))
	}
	return aligned
}

// MajorTickValue returns the serial-day value of major tick number tick
// away from base. Day and finer units add directly to the serial value;
// month and year steps go through calendar arithmetic because their
// duration varies.
func MajorTickValue(base, tick float64, unit Unit, step float64) float64 {
	return tickValue(base, tick*step, unit)
}

// MinorTickValue is MajorTickValue for minor ticks, which always carry
// integer ordinals.
func MinorTickValue(base float64, tick int, unit Unit, step float64) float64 {
	return tickValue(base, float64(tick)*step, unit)
}

// MinorTickStartIndex returns the ordinal, relative to base, of the first
// minor tick at or before min. The ordinal is usually negative since base
// aligns at or after min. Months count 28 days here on purpose: nominal
// unit lengths must under-estimate, or the walk could start past the first
// visible minor tick.
func MinorTickStartIndex(base, min float64, unit Unit, step float64) int {
	if step <= 0 {
		return 0
	}
	return int(math.Floor((min - base) / (minorStartDays(unit) * step)))
}

// minorStartDays is daysPer with the conservative 28-day month.
func minorStartDays(u Unit) float64 {
	if u == Month {
		return 28
	}
	return daysPer(u)
}

// TickCount returns the number of major ticks implied by the range and
// step, clamped to [1, MaxTickCount]. Year and month counts come from
// calendar-field differences since those units have no fixed day length;
// finer units divide the raw span. The 1.001 bias guards against float
// undercount when the range is an exact multiple of the step.
func TickCount(min, max float64, unit Unit, step float64) int {
	if step <= 0 {
		return 1
	}
	var n float64
	switch unit {
	case Year:
		c1, c2 := xdate.ToCalendar(min), xdate.ToCalendar(max)
		n = float64(c2.Year-c1.Year)/step + 1.001
	case Month:
		c1, c2 := xdate.ToCalendar(min), xdate.ToCalendar(max)
		n = (float64(c2.Month-c1.Month)+12*float64(c2.Year-c1.Year))/step + 1.001
	default:
		n = (max-min)/(daysPer(unit)*step) + 1.001
	}
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > MaxTickCount {
		return MaxTickCount
	}
	return int(n)
}

// tickValue advances base by amount units. For month and year units the
// whole part advances through the calendar and any fraction adds as
// fraction of the nominal unit length, so a whole-unit sum of fractional
// steps still lands exactly on a calendar boundary.
func tickValue(base, amount float64, unit Unit) float64 {
	switch unit {
	case Year:
		whole, frac := math.Modf(amount)
		c := addMonths(xdate.ToCalendar(base), int(whole)*12)
		return xdate.FromCalendar(c) + frac*daysPer(Year)
	case Month:
		whole, frac := math.Modf(amount)
		c := addMonths(xdate.ToCalendar(base), int(whole))
		return xdate.FromCalendar(c) + frac*daysPer(Month)
	default:
		return base + amount*daysPer(unit)
	}
}

// addMonths advances the calendar by whole months. A day-of-month past the
// end of the target month clamps to that month's last day; this is the one
// documented resolution rule for month and year tick arithmetic, so
// 31-Jan-2023 plus one month is 28-Feb-2023 and 29-Feb-2024 plus twelve is
// 28-Feb-2025.
func addMonths(c xdate.Calendar, months int) xdate.Calendar {
	total := c.Year*12 + c.Month - 1 + months
	c.Year = floorDiv(total, 12)
	c.Month = total - c.Year*12 + 1
	if dim := xdate.DaysInMonth(c.Year, c.Month); c.Day > dim {
		c.Day = dim
	}
	return c
}

// zeroBelow clears every calendar field finer than unit. Second grain
// drops sub-second fractions.
func zeroBelow(c xdate.Calendar, unit Unit) xdate.Calendar {
	switch unit {
	case Year:
		c.Month, c.Day = 1, 1
		c.Hour, c.Minute, c.Second = 0, 0, 0
	case Month:
		c.Day = 1
		c.Hour, c.Minute, c.Second = 0, 0, 0
	case Day:
		c.Hour, c.Minute, c.Second = 0, 0, 0
	case Hour:
		c.Minute, c.Second = 0, 0
	case Minute:
		c.Second = 0
	default:
		c.Second = math.Floor(c.Second)
	}
	return c
}

// bumpUnit advances the field selected by unit by one; out-of-range fields
// normalize on conversion.
func bumpUnit(c xdate.Calendar, unit Unit) xdate.Calendar {
	switch unit {
	case Year:
		c.Year++
	case Month:
		c.Month++
	case Day:
		c.Day++
	case Hour:
		c.Hour++
	case Minute:
		c.Minute++
	default:
		c.Second++
	}
	return c
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
