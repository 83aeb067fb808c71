package zedgraph

import (
	"strings"
	"testing"
	"time"

	"github.com/DragonZX/ZedGraph/labelfit"
	"github.com/DragonZX/ZedGraph/scale"
	"github.com/DragonZX/ZedGraph/xdate"
)

// fakeRenderer records draw calls for assertions. Text is 7px per byte,
// like a monospace bitmap face.
type fakeRenderer struct {
	w, h  int
	lines []fakeLine
	texts []fakeText
}

type fakeLine struct {
	x0, y0, x1, y1 float64
	c              RGBA
}

type fakeText struct {
	x, y float64
	s    string
}

func newFakeRenderer(w, h int) *fakeRenderer { return &fakeRenderer{w: w, h: h} }

func (f *fakeRenderer) Size() (int, int) { return f.w, f.h }

func (f *fakeRenderer) Line(x0, y0, x1, y1 float64, c RGBA) {
	f.lines = append(f.lines, fakeLine{x0, y0, x1, y1, c})
}

func (f *fakeRenderer) Text(x, y float64, s string, _ RGBA) {
	f.texts = append(f.texts, fakeText{x, y, s})
}

func (f *fakeRenderer) TextWidth(s string) float64 { return 7 * float64(len(s)) }

// xLabels returns the texts drawn at the X label baseline.
func (f *fakeRenderer) xLabels(p *GraphPane) []fakeText {
	baseline := float64(f.h) - p.Margins.Bottom + xLabelDrop
	var out []fakeText
	for _, t := range f.texts {
		if t.y == baseline {
			out = append(out, t)
		}
	}
	return out
}

func dserial(year, month, day, hour int) float64 {
	return xdate.FromCalendar(xdate.Calendar{Year: year, Month: month, Day: day, Hour: hour})
}

// tenDayPane returns a pane with one curve of daily points covering
// 2023-03-10 06:00 through 2023-03-20 06:00.
func tenDayPane(opts ...PaneOption) *GraphPane {
	p := NewGraphPane(opts...)
	c := p.AddCurve("signal", nil)
	start := dserial(2023, 3, 10, 6)
	for i := 0; i <= 10; i++ {
		c.AddPoint(start+float64(i), float64(i))
	}
	return p
}

func TestNewGraphPaneDefaults(t *testing.T) {
	p := NewGraphPane()

	if _, ok := p.XAxis.Scale.(*scale.Date); !ok {
		t.Errorf("XAxis.Scale is %T, want *scale.Date", p.XAxis.Scale)
	}
	if _, ok := p.YAxis.Scale.(*scale.Linear); !ok {
		t.Errorf("YAxis.Scale is %T, want *scale.Linear", p.YAxis.Scale)
	}
	if !p.Grid || !p.Legend {
		t.Errorf("Grid = %v, Legend = %v, want both on", p.Grid, p.Legend)
	}
	want := Margins{Left: 54, Right: 16, Top: 28, Bottom: 40}
	if p.Margins != want {
		t.Errorf("Margins = %+v, want %+v", p.Margins, want)
	}
}

func TestAddCurve(t *testing.T) {
	p := NewGraphPane()
	a := p.AddCurve("first", []Point{{X: 1, Y: 2}})
	b := p.AddCurve("second", nil)

	if len(p.Curves()) != 2 || p.Curves()[0] != a || p.Curves()[1] != b {
		t.Fatal("AddCurve did not register curves in order")
	}
	if a.Color == b.Color {
		t.Error("consecutive curves share a palette color")
	}
	if a.Color != paletteColor(0) || b.Color != paletteColor(1) {
		t.Error("curves did not take palette colors in order")
	}
}

func TestAddTimeCurve(t *testing.T) {
	p := NewGraphPane()
	ts := []time.Time{
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	c := p.AddTimeCurve("series", ts, []float64{1, 2})

	if len(c.Points) != 2 {
		t.Fatalf("points = %d, want shorter slice length 2", len(c.Points))
	}
	if got, want := c.Points[0].X, xdate.FromTime(ts[0]); got != want {
		t.Errorf("Points[0].X = %v, want %v", got, want)
	}
	if c.Points[1].Y != 2 {
		t.Errorf("Points[1].Y = %v, want 2", c.Points[1].Y)
	}
}

func TestDrawTenDayRange(t *testing.T) {
	p := tenDayPane(WithTargetSteps(5, 0))
	fake := newFakeRenderer(800, 600)

	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	d := p.XAxis.Scale.(*scale.Date)
	if d.MajorUnit != scale.Day || d.Step != 2 {
		t.Errorf("picked %v step %v, want Day step 2", d.MajorUnit, d.Step)
	}
	if d.Min != dserial(2023, 3, 10, 0) {
		t.Errorf("Min = %v, want midnight 2023-03-10", d.Min)
	}
	if d.Max != dserial(2023, 3, 21, 0) {
		t.Errorf("Max = %v, want midnight 2023-03-21", d.Max)
	}

	lin := p.YAxis.Scale.(*scale.Linear)
	if lin.Min != 0 || lin.Max != 10 || lin.Step != 1 {
		t.Errorf("y picked [%v, %v] step %v, want [0, 10] step 1", lin.Min, lin.Max, lin.Step)
	}

	labels := fake.xLabels(p)
	if len(labels) != 6 {
		t.Fatalf("drew %d x labels, want 6", len(labels))
	}
	if labels[0].s != "10-Mar" || labels[5].s != "20-Mar" {
		t.Errorf("x labels %q .. %q, want 10-Mar .. 20-Mar", labels[0].s, labels[5].s)
	}

	// 10 curve segments plus the legend swatch share the curve color.
	curveLines := 0
	for _, l := range fake.lines {
		if l.c == paletteColor(0) {
			curveLines++
		}
	}
	if curveLines != 11 {
		t.Errorf("curve-colored lines = %d, want 11", curveLines)
	}

	legend := false
	for _, txt := range fake.texts {
		if txt.s == "signal" {
			legend = true
		}
	}
	if !legend {
		t.Error("legend entry not drawn")
	}
}

func TestDrawCullsOverlappingLabels(t *testing.T) {
	p := tenDayPane()
	fake := newFakeRenderer(300, 200)

	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	labels := fake.xLabels(p)
	ticks := len(p.XAxis.Scale.MajorTicks())
	if len(labels) == 0 || len(labels) >= ticks {
		t.Fatalf("drew %d of %d labels, want a proper culled subset", len(labels), ticks)
	}
	for i := 1; i < len(labels); i++ {
		prevEnd := labels[i-1].x + fake.TextWidth(labels[i-1].s)
		if labels[i].x < prevEnd {
			t.Errorf("label %q at %v overlaps previous ending at %v",
				labels[i].s, labels[i].x, prevEnd)
		}
	}
}

func TestDrawWithoutCullingDrawsAll(t *testing.T) {
	p := tenDayPane(WithPreventLabelOverlap(false))
	fake := newFakeRenderer(300, 200)

	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	labels := fake.xLabels(p)
	ticks := len(p.XAxis.Scale.MajorTicks())
	if len(labels) != ticks {
		t.Errorf("drew %d labels, want all %d", len(labels), ticks)
	}
}

func TestDrawEstimatorCoarsensSteps(t *testing.T) {
	p := tenDayPane(WithLabelEstimator(labelfit.Fixed{LabelPx: 200}))
	fake := newFakeRenderer(800, 600)

	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	// 730px of plot fit 3 labels of 200px; the snapped 11-day range at
	// 3 target steps lands on 4-day major steps.
	d := p.XAxis.Scale.(*scale.Date)
	if d.Step != 4 {
		t.Errorf("Step = %v, want 4 after estimator refinement", d.Step)
	}
	if ticks := p.XAxis.Scale.MajorTicks(); len(ticks) > 3 {
		t.Errorf("%d major ticks, want at most 3", len(ticks))
	}
}

func TestDrawRelativeDates(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	p := NewGraphPane(WithRelativeDates(ref))
	c := p.AddCurve("load", nil)
	for i := -5; i <= 5; i++ {
		c.AddTimePoint(ref.AddDate(0, 0, i), float64(i*i))
	}

	fake := newFakeRenderer(800, 600)
	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	var past, future bool
	for _, txt := range fake.xLabels(p) {
		if strings.Contains(txt.s, "ago") {
			past = true
		}
		if strings.Contains(txt.s, "from now") {
			future = true
		}
	}
	if !past || !future {
		t.Errorf("relative labels missing: past=%v future=%v", past, future)
	}
}

func TestDrawEmptyPane(t *testing.T) {
	p := NewGraphPane()
	fake := newFakeRenderer(400, 300)

	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() on empty pane = %v", err)
	}
	if len(fake.lines) == 0 {
		t.Error("empty pane drew no frame")
	}
}

func TestDrawSurfaceTooSmall(t *testing.T) {
	p := tenDayPane()
	if err := p.Draw(newFakeRenderer(60, 60)); err == nil {
		t.Fatal("Draw() on a 60x60 surface should fail")
	}
}

func TestDrawLogYAxis(t *testing.T) {
	p := NewGraphPane()
	p.YAxis.Scale = scale.NewLog(0, 0)
	c := p.AddCurve("latency", nil)
	start := dserial(2024, 1, 1, 0)
	for i := 0; i <= 10; i++ {
		c.AddPoint(start+float64(i), float64(uint64(1)<<uint(i)))
	}

	fake := newFakeRenderer(800, 600)
	if err := p.Draw(fake); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	lg := p.YAxis.Scale.(*scale.Log)
	if lg.Min != 1 || lg.Max != 1e4 {
		t.Errorf("log range [%v, %v], want [1, 1e4]", lg.Min, lg.Max)
	}
}
