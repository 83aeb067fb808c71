package zedgraph

import (
	"testing"
	"time"

	"github.com/DragonZX/ZedGraph/labelfit"
)

func TestDefaultPaneOptions(t *testing.T) {
	o := defaultPaneOptions()

	if o.margins == (Margins{}) {
		t.Error("default margins are zero")
	}
	if o.labelGapPx != 6 {
		t.Errorf("labelGapPx = %v, want 6", o.labelGapPx)
	}
	if !o.cullOverlap {
		t.Error("label culling should default on")
	}
	if o.estimator != nil || o.xLabels != nil {
		t.Error("estimator and label override should default nil")
	}
}

func TestPaneOptionsApply(t *testing.T) {
	m := Margins{Left: 10, Right: 10, Top: 10, Bottom: 10}
	p := NewGraphPane(
		WithTitle("Latency"),
		WithMargins(m),
		WithTargetSteps(4, 9),
		WithLabelEstimator(labelfit.Fixed{LabelPx: 80}),
		WithLabelGap(12),
		WithPreventLabelOverlap(false),
	)

	if p.Title != "Latency" {
		t.Errorf("Title = %q, want %q", p.Title, "Latency")
	}
	if p.Margins != m {
		t.Errorf("Margins = %+v, want %+v", p.Margins, m)
	}
	if p.opts.targetStepsX != 4 || p.opts.targetStepsY != 9 {
		t.Errorf("target steps = (%v, %v), want (4, 9)",
			p.opts.targetStepsX, p.opts.targetStepsY)
	}
	if p.opts.estimator == nil {
		t.Error("estimator not installed")
	}
	if p.opts.labelGapPx != 12 {
		t.Errorf("labelGapPx = %v, want 12", p.opts.labelGapPx)
	}
	if p.opts.cullOverlap {
		t.Error("culling not disabled")
	}
}

func TestWithRelativeDatesInstallsOverride(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	p := NewGraphPane(WithRelativeDates(ref))

	if p.XAxis.Labels == nil {
		t.Fatal("WithRelativeDates did not install a label override")
	}
	// One day before the reference.
	got := p.XAxis.Labels(dserial(2024, 6, 14, 0))
	if got != "1 day ago" {
		t.Errorf("label = %q, want %q", got, "1 day ago")
	}
}
