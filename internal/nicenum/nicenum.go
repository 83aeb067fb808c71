// Package nicenum picks human-friendly step sizes for axis tick spacing.
package nicenum

import "math"

// StepSize returns the "nice" increment closest to rng/targetSteps, where
// nice means 1, 2, or 5 times a power of ten. The mantissa rounds to the
// nearest integer first, then promotes upward, so 2.5 becomes 5 and 6
// becomes 10. Degenerate inputs fall back to a unit step.
func StepSize(rng, targetSteps float64) float64 {
	if rng <= 0 || targetSteps <= 0 {
		return 1
	}
	tempStep := rng / targetSteps
	mag := math.Floor(math.Log10(tempStep))
	magPow := math.Pow(10, mag)
	magMsd := int(tempStep/magPow + 0.5)
	switch {
	case magMsd > 5:
		magMsd = 10
	case magMsd > 2:
		magMsd = 5
	case magMsd > 1:
		magMsd = 2
	}
	return float64(magMsd) * magPow
}
