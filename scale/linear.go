package scale

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DragonZX/ZedGraph/internal/nicenum"
)

// Linear is a plain numeric scale with 1-2-5 nice steps.
//
// Unlike Date, Linear keeps the engineering-notation magnitude: when the
// range lives far from unity, labels display value/10^Mag and the axis
// title is expected to carry the multiplier.
type Linear struct {
	Min, Max float64

	MinAuto, MaxAuto bool
	StepAuto         bool
	MinorStepAuto    bool
	MagAuto          bool

	Step      float64
	MinorStep float64
	Mag       int

	decimals int
	printer  *message.Printer
}

// NewLinear returns a fully automatic linear scale over [min, max].
func NewLinear(min, max float64) *Linear {
	return &Linear{
		Min:           min,
		Max:           max,
		MinAuto:       true,
		MaxAuto:       true,
		StepAuto:      true,
		MinorStepAuto: true,
		MagAuto:       true,
		Step:          1,
		MinorStep:     0.2,
	}
}

var _ Scale = (*Linear)(nil)

// Range returns the scale ends, min first.
func (l *Linear) Range() (min, max float64) { return l.Min, l.Max }

// Pick finalizes the scale: degenerate ranges pad, automatic steps take
// nice values, automatic ends align outward to step multiples, and the
// display magnitude settles on a multiple of three.
func (l *Linear) Pick(cfg PickConfig) error {
	if l.Max-l.Min < degenerateSpan {
		pad := 0.2 * math.Max(math.Max(math.Abs(l.Min), math.Abs(l.Max)), 1)
		if l.MaxAuto {
			l.Max += pad
		}
		if l.MinAuto {
			l.Min -= pad
		}
	}

	target := cfg.TargetSteps
	if target <= 0 {
		target = DefaultTargetStepsH
		if cfg.Vertical {
			target = DefaultTargetStepsV
		}
	}

	if l.StepAuto {
		l.Step = nicenum.StepSize(l.Max-l.Min, target)
		if cfg.Estimator != nil {
			if maxLabels := cfg.Estimator.MaxLabels(); maxLabels >= 1 && maxLabels < l.TickCount() {
				l.Step = nicenum.StepSize(l.Max-l.Min, float64(maxLabels))
			}
		}
	}
	if l.MinorStepAuto {
		l.MinorStep = nicenum.StepSize(l.Step, DefaultTargetMinorSteps)
	}

	if l.MinAuto {
		l.Min = l.Step * math.Floor(l.Min/l.Step+ceilBias)
	}
	if l.MaxAuto {
		l.Max = l.Step * math.Ceil(l.Max/l.Step-ceilBias)
	}

	if l.MagAuto {
		l.Mag = pickMag(l.Min, l.Max)
	}
	l.decimals = stepDecimals(l.Step, l.Mag)

	slogger().Debug("scale: picked linear scale",
		"min", l.Min, "max", l.Max, "step", l.Step,
		"minorStep", l.MinorStep, "mag", l.Mag)
	return nil
}

// TickCount returns the number of major ticks implied by the range and
// step, clamped to [1, MaxTickCount].
func (l *Linear) TickCount() int {
	if l.Step <= 0 {
		return 1
	}
	n := (l.Max-l.Min)/l.Step + 1.001
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > MaxTickCount {
		return MaxTickCount
	}
	return int(n)
}

// MajorTicks enumerates the labeled ticks from the first step multiple at
// or after Min.
func (l *Linear) MajorTicks() []Tick {
	base := l.Step * math.Ceil(l.Min/l.Step-ceilBias)
	count := l.TickCount()
	ticks := make([]Tick, 0, count)
	for i := 0; i < count; i++ {
		v := base + float64(i)*l.Step
		if v > l.Max+l.Step*1e-6 {
			break
		}
		ticks = append(ticks, Tick{Value: v, Label: l.Label(v)})
	}
	return ticks
}

// MinorTicks enumerates minor step multiples inside [Min, Max].
func (l *Linear) MinorTicks() []float64 {
	if l.MinorStep <= 0 {
		return nil
	}
	base := l.MinorStep * math.Ceil(l.Min/l.MinorStep-ceilBias)
	vals := make([]float64, 0, 32)
	for i := 0; i < maxMinorTicks; i++ {
		v := base + float64(i)*l.MinorStep
		if v > l.Max+l.MinorStep*1e-6 {
			break
		}
		vals = append(vals, v)
	}
	return vals
}

// Label renders v scaled by the display magnitude, with grouped digits and
// just enough decimals to tell neighboring ticks apart.
func (l *Linear) Label(v float64) string {
	if l.printer == nil {
		l.printer = message.NewPrinter(language.English)
	}
	return l.printer.Sprintf("%.*f", l.decimals, v/math.Pow(10, float64(l.Mag)))
}

// pickMag chooses the engineering-notation magnitude for a range: zero for
// everyday values, otherwise the nearest multiple of three below the
// range's decade.
func pickMag(min, max float64) int {
	maxAbs := math.Max(math.Abs(min), math.Abs(max))
	if maxAbs == 0 {
		return 0
	}
	mag := math.Floor(math.Log10(maxAbs))
	if math.Abs(mag) <= 6 {
		return 0
	}
	return int(math.Floor(mag/3) * 3)
}

// stepDecimals returns the label decimal places needed for a step at a
// display magnitude.
func stepDecimals(step float64, mag int) int {
	s := step / math.Pow(10, float64(mag))
	if s <= 0 || s >= 1 {
		return 0
	}
	return int(-math.Floor(math.Log10(s)))
}
