package labelfit

import "golang.org/x/image/font"

// FaceMeasure measures labels with a golang.org/x/image font.Face, such
// as basicfont.Face7x13 or an opentype face. Shaping features like
// kerning are not applied; use Shaper where they matter.
//
// font.Face implementations are generally not safe for concurrent use,
// and neither is FaceMeasure.
type FaceMeasure struct {
	Face font.Face
}

// MaxLabels implements Estimator. A nil Face reports 0 so pickers ignore
// the estimate.
func (m FaceMeasure) MaxLabels(axis Axis, sample string) int {
	if m.Face == nil {
		return 0
	}
	return fit(axis, float64(font.MeasureString(m.Face, sample))/64)
}
