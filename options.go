package zedgraph

import (
	"time"

	"github.com/DragonZX/ZedGraph/labelfit"
	"github.com/DragonZX/ZedGraph/scale"
)

// PaneOption configures a GraphPane during creation.
// Use functional options to customize pane behavior.
//
// Example:
//
//	// Defaults
//	pane := zedgraph.NewGraphPane()
//
//	// Titled pane with measured label thinning
//	pane := zedgraph.NewGraphPane(
//	    zedgraph.WithTitle("Throughput"),
//	    zedgraph.WithLabelEstimator(labelfit.FaceMeasure{Face: basicfont.Face7x13}),
//	)
type PaneOption func(*paneOptions)

// paneOptions holds optional configuration for GraphPane creation.
type paneOptions struct {
	title        string
	margins      Margins
	targetStepsX float64
	targetStepsY float64
	estimator    labelfit.Estimator
	labelGapPx   float64
	cullOverlap  bool
	xLabels      func(float64) string
}

// defaultPaneOptions returns the default pane options.
func defaultPaneOptions() paneOptions {
	return paneOptions{
		margins:     Margins{Left: 54, Right: 16, Top: 28, Bottom: 40},
		labelGapPx:  6,
		cullOverlap: true,
	}
}

// WithTitle sets the pane title, drawn centered above the plot.
func WithTitle(title string) PaneOption {
	return func(o *paneOptions) {
		o.title = title
	}
}

// WithMargins sets the pixel margins between the surface edge and the
// plot rectangle. Axis labels and titles draw inside the margins.
func WithMargins(m Margins) PaneOption {
	return func(o *paneOptions) {
		o.margins = m
	}
}

// WithTargetSteps sets the desired major step counts for the X and Y
// axes. Zero keeps an axis on the scale package default.
func WithTargetSteps(x, y float64) PaneOption {
	return func(o *paneOptions) {
		o.targetStepsX = x
		o.targetStepsY = y
	}
}

// WithLabelEstimator installs a measured estimator for X axis labels.
// During Draw the pane binds it to the plot width and the widest tick
// label, then re-picks so the step count drops below the fit limit.
// Without an estimator only draw-time culling prevents overlap.
func WithLabelEstimator(e labelfit.Estimator) PaneOption {
	return func(o *paneOptions) {
		o.estimator = e
	}
}

// WithLabelGap sets the minimum pixel gap between adjacent axis labels.
func WithLabelGap(px float64) PaneOption {
	return func(o *paneOptions) {
		o.labelGapPx = px
	}
}

// WithPreventLabelOverlap toggles draw-time label culling. It is on by
// default; turning it off draws every tick label even when they collide.
func WithPreventLabelOverlap(on bool) PaneOption {
	return func(o *paneOptions) {
		o.cullOverlap = on
	}
}

// WithRelativeDates labels the X axis relative to ref ("2 days ago",
// "3 hours from now") instead of with absolute dates.
func WithRelativeDates(ref time.Time) PaneOption {
	return func(o *paneOptions) {
		o.xLabels = scale.RelativeLabeler{Ref: ref}.Label
	}
}
