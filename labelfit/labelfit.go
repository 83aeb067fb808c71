// Package labelfit estimates how many tick labels fit along a chart axis
// without overlapping.
//
// The scale pickers accept anything with a MaxLabels method; this package
// supplies estimators backed by real text measurement. [Fixed] assumes a
// constant label width, [FaceMeasure] measures with a golang.org/x/image
// font.Face, and [Shaper] runs full HarfBuzz shaping via
// go-text/typesetting so kerning and non-Latin scripts affect the
// estimate. [Bound] pins an estimator to one axis and sample label,
// producing the zero-argument form the pickers consume.
package labelfit

import "errors"

// ErrNoFont is returned when an estimator is constructed without usable
// font data.
var ErrNoFont = errors.New("labelfit: no font data")

// Axis describes the space available for tick labels.
type Axis struct {
	// LengthPx is the axis length in pixels.
	LengthPx float64

	// GapPx is the minimum gap between adjacent labels in pixels.
	GapPx float64
}

// Estimator reports how many labels the size of sample fit along axis.
// Estimates are at least 1. An implementation may return 0 to decline
// (for example when it has no usable font); callers treat 0 as no
// constraint.
type Estimator interface {
	MaxLabels(axis Axis, sample string) int
}

// fit returns how many labels of width labelPx fit along the axis.
// n labels need n*labelPx + (n-1)*GapPx pixels, so
// n = floor((LengthPx+GapPx) / (labelPx+GapPx)), never below 1.
func fit(axis Axis, labelPx float64) int {
	per := labelPx + axis.GapPx
	if per <= 0 || axis.LengthPx <= 0 {
		return 1
	}
	n := int((axis.LengthPx + axis.GapPx) / per)
	if n < 1 {
		return 1
	}
	return n
}

// Fixed estimates with a constant label width, ignoring the sample text.
// Useful when labels are known to be uniform or measurement is not worth
// the cost.
type Fixed struct {
	LabelPx float64
}

// MaxLabels implements Estimator.
func (f Fixed) MaxLabels(axis Axis, _ string) int {
	return fit(axis, f.LabelPx)
}

// Bound pins an estimator to a fixed axis and sample label. The result
// has a zero-argument MaxLabels method, which is the shape the scale
// pickers accept.
type Bound struct {
	E      Estimator
	Axis   Axis
	Sample string
}

// MaxLabels reports how many labels fit using the bound axis and sample.
// A nil estimator reports 0, which pickers ignore.
func (b Bound) MaxLabels() int {
	if b.E == nil {
		return 0
	}
	return b.E.MaxLabels(b.Axis, b.Sample)
}
