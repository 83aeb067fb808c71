package scale

import (
	"math"

	"github.com/DragonZX/ZedGraph/internal/nicenum"
	"github.com/DragonZX/ZedGraph/xdate"
)

// StepSizes is the result of date step selection: everything the tier walk
// decided, before any of it is applied to a scale. The orchestrator copies
// the fields whose Auto flags permit it.
type StepSizes struct {
	MajorUnit Unit
	Step      float64
	MinorUnit Unit
	MinorStep float64
	Format    string
}

// minorRule selects how a tier derives its minor step.
type minorRule int

const (
	// minorQuarter divides the major step by four, fractions allowed.
	minorQuarter minorRule = iota
	// minorRangeBased aims for about three minor steps per raw major step,
	// snapped up within the minor unit's nice set.
	minorRangeBased
	// minorHourLadder maps the major step in hours onto a fixed ladder.
	minorHourLadder
)

// tier is one record of the range classification table.
type tier struct {
	name      string
	threshold float64 // days; the tier wins when range > threshold
	major     Unit
	minor     Unit
	format    string
	snap      []float64 // nice set for the major step, nil for plain ceil
	nice      bool      // 1-2-5 selection over seconds instead of ceil
	rule      minorRule
}

// Nice sets per spec'd clock conventions: hours snap to divisors of a day,
// minutes and seconds to divisors of their next unit.
var (
	hourSnap  = []float64{1, 2, 6, 12, 24}
	clockSnap = []float64{1, 5, 15, 30}
	monthSnap = []float64{1, 2, 3, 6, 12}
)

// dateTiers classifies a range in days, walked top to bottom; the first
// record whose threshold the range exceeds wins and the last record is an
// unconditional fallthrough. Tier bounds are exclusive below, inclusive
// above: a range of exactly 300 days still reads as day-grained.
var dateTiers = []tier{
	{name: "year-year", threshold: 1825, major: Year, minor: Year, format: "2006"},
	{name: "year-month", threshold: 730, major: Year, minor: Month, format: "Jan-2006", rule: minorRangeBased},
	{name: "month-month", threshold: 300, major: Month, minor: Month, format: "Jan-06"},
	{name: "day-day", threshold: 3, major: Day, minor: Day, format: "2-Jan"},
	{name: "day-hour", threshold: 0.4, major: Hour, minor: Hour, format: "2-Jan 15:04", snap: hourSnap, rule: minorHourLadder},
	{name: "hour-hour", threshold: 0.125, major: Hour, minor: Minute, format: "15:04", snap: hourSnap, rule: minorRangeBased},
	{name: "hour-minute", threshold: 6.94e-3, major: Minute, minor: Minute, format: "15:04", snap: clockSnap, rule: minorRangeBased},
	{name: "minute-minute", threshold: 2.083e-3, major: Minute, minor: Second, format: "15:04", snap: clockSnap, rule: minorRangeBased},
	{name: "minute-second", threshold: 3.472e-4, major: Second, minor: Second, format: "15:04:05", snap: clockSnap, rule: minorRangeBased},
	{name: "second-second", threshold: 5.787e-5, major: Second, minor: Second, format: "15:04:05", snap: clockSnap},
	{name: "second-fine", threshold: 0, major: Second, minor: Second, format: "15:04:05.0", nice: true},
}

// ceilBias absorbs float noise when a range divides into an exact whole
// number of units, so ten days over five steps yields two-day steps, not
// three.
const ceilBias = 1e-9

// selectDateSteps classifies rangeDays against the tier table and computes
// the full step choice for it. Pure: applying any of the result to a scale
// is the caller's business.
func selectDateSteps(rangeDays, targetSteps float64) StepSizes {
	tt := dateTiers[len(dateTiers)-1]
	for _, t := range dateTiers[:len(dateTiers)-1] {
		if rangeDays > t.threshold {
			tt = t
			break
		}
	}

	tempStep := rangeDays / targetSteps // days per major step
	var step float64
	switch {
	case tt.nice:
		step = nicenum.StepSize(rangeDays*xdate.SecondsPerDay, targetSteps)
	case tt.snap != nil:
		step = snapUp(math.Ceil(tempStep/daysPer(tt.major)-ceilBias), tt.snap)
	default:
		step = math.Ceil(tempStep/daysPer(tt.major) - ceilBias)
	}
	if step < 1 && !tt.nice {
		step = 1
	}

	res := StepSizes{MajorUnit: tt.major, Step: step, Format: tt.format}

	// A one-year major step always subdivides into quarters, in either
	// year tier, overriding the tier's own minor rule.
	if tt.major == Year && step == 1 {
		res.MinorUnit, res.MinorStep = Year, 0.25
		return res
	}
	switch tt.rule {
	case minorRangeBased:
		res.MinorUnit = tt.minor
		res.MinorStep = rangeMinorStep(rangeDays, targetSteps, tt.minor)
	case minorHourLadder:
		res.MinorUnit = Hour
		res.MinorStep = hourLadder(step)
	default:
		res.MinorUnit = tt.minor
		res.MinorStep = step / 4
		if tt.major == Year {
			// Multi-year steps take a nice fraction rather than a
			// blunt quarter.
			res.MinorStep = nicenum.StepSize(step, targetSteps)
		}
	}
	return res
}

// rangeMinorStep derives a minor step of roughly a third of the raw major
// step, expressed in the minor unit and snapped up within that unit's nice
// set. Values beyond the set take its maximum.
func rangeMinorStep(rangeDays, targetSteps float64, minor Unit) float64 {
	raw := math.Ceil(rangeDays/(targetSteps*3)/daysPer(minor) - ceilBias)
	set := clockSnap
	if minor == Month {
		set = monthSnap
	}
	return snapUp(raw, set)
}

// hourLadder subdivides an hour-unit major step.
func hourLadder(majorStep float64) float64 {
	switch {
	case majorStep <= 1:
		return 0.25
	case majorStep <= 6:
		return 1
	case majorStep <= 12:
		return 2
	}
	return 4
}

// snapUp returns the smallest member of set that is >= v, or the set
// maximum when v exceeds them all. Sets are ordered ascending.
func snapUp(v float64, set []float64) float64 {
	for _, s := range set {
		if v <= s {
			return s
		}
	}
	return set[len(set)-1]
}

// deriveMinor computes minors for a scale whose major unit and step are
// pinned by the caller: same unit, a quarter of the step, except that
// multi-year steps take a nice fraction.
func deriveMinor(major Unit, step, targetSteps float64) (Unit, float64) {
	if major == Year && step != 1 {
		return Year, nicenum.StepSize(step, targetSteps)
	}
	return major, step / 4
}
