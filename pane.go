package zedgraph

import (
	"fmt"
	"time"

	"github.com/DragonZX/ZedGraph/labelfit"
	"github.com/DragonZX/ZedGraph/scale"
	"github.com/DragonZX/ZedGraph/xdate"
)

// Margins is the pixel spacing between the surface edge and the plot
// rectangle. Axis labels and titles draw inside the margins.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Layout constants for ticks, labels, and the legend.
const (
	majorTickLen = 5
	minorTickLen = 2
	xLabelDrop   = 16 // baseline offset below the plot edge
	yLabelPad    = 6  // gap between Y labels and the plot edge
	lineHeightPx = 14
)

var gridColor = RGB(0.88, 0.88, 0.88)

// GraphPane is one chart: a titled plot rectangle, an X axis, a Y axis,
// and the curves drawn inside. Create one with NewGraphPane, add data
// with AddCurve or AddTimeCurve, then hand a renderer to Draw.
//
// GraphPane is not safe for concurrent use.
type GraphPane struct {
	// Title is drawn centered above the plot.
	Title string

	// XAxis and YAxis hold the scales and styling for the two axes.
	XAxis Axis
	YAxis Axis

	// Margins separate the plot rectangle from the surface edge.
	Margins Margins

	// Grid draws light grid lines at major ticks. On by default.
	Grid bool

	// Legend lists curve names inside the plot. On by default.
	Legend bool

	curves []*Curve
	opts   paneOptions
}

// NewGraphPane creates a pane with a date X axis and a linear Y axis.
func NewGraphPane(opts ...PaneOption) *GraphPane {
	o := defaultPaneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &GraphPane{
		Title:   o.title,
		XAxis:   Axis{Scale: scale.NewDate(0, 1)},
		YAxis:   Axis{Scale: scale.NewLinear(0, 1)},
		Margins: o.margins,
		Grid:    true,
		Legend:  true,
		opts:    o,
	}
	if o.xLabels != nil {
		p.XAxis.Labels = o.xLabels
	}
	return p
}

// AddCurve appends a named curve and returns it for further data loading
// and styling. Colors rotate through a default palette.
func (p *GraphPane) AddCurve(name string, pts []Point) *Curve {
	c := &Curve{Name: name, Color: paletteColor(len(p.curves)), Points: pts}
	p.curves = append(p.curves, c)
	return c
}

// AddTimeCurve appends a curve from parallel time and value slices,
// converting times to serial day values. Extra entries in the longer
// slice are ignored.
func (p *GraphPane) AddTimeCurve(name string, ts []time.Time, ys []float64) *Curve {
	n := len(ts)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: xdate.FromTime(ts[i]), Y: ys[i]}
	}
	return p.AddCurve(name, pts)
}

// Curves returns the curves in draw order.
func (p *GraphPane) Curves() []*Curve { return p.curves }

// Draw ranges both axes over the current data, picks their ticks, and
// renders the pane. It can be called again after data changes; axes with
// pinned ends or steps keep them across draws.
func (p *GraphPane) Draw(r LineRenderer) error {
	w, h := r.Size()
	pl := plot{
		r:  r,
		x0: p.Margins.Left,
		y0: p.Margins.Top,
		x1: float64(w) - p.Margins.Right,
		y1: float64(h) - p.Margins.Bottom,
	}
	if pl.x1-pl.x0 < 16 || pl.y1-pl.y0 < 16 {
		return fmt.Errorf("zedgraph: surface %dx%d too small for margins", w, h)
	}

	p.rangeFromData()

	xcfg := scale.PickConfig{TargetSteps: p.opts.targetStepsX}
	if err := p.XAxis.Scale.Pick(xcfg); err != nil {
		return fmt.Errorf("zedgraph: pick x axis: %w", err)
	}
	if p.opts.estimator != nil {
		// The first pick established the label format; rebind the
		// estimator to the widest label and let the picker thin steps.
		xcfg.Estimator = labelfit.Bound{
			E:      p.opts.estimator,
			Axis:   labelfit.Axis{LengthPx: pl.x1 - pl.x0, GapPx: p.opts.labelGapPx},
			Sample: p.widestXLabel(),
		}
		if err := p.XAxis.Scale.Pick(xcfg); err != nil {
			return fmt.Errorf("zedgraph: pick x axis: %w", err)
		}
	}
	ycfg := scale.PickConfig{TargetSteps: p.opts.targetStepsY, Vertical: true}
	if err := p.YAxis.Scale.Pick(ycfg); err != nil {
		return fmt.Errorf("zedgraph: pick y axis: %w", err)
	}

	pl.setRanges(p.XAxis.Scale, p.YAxis.Scale)
	xmin, xmax := p.XAxis.Scale.Range()
	Logger().Debug("draw pane",
		"width", w, "height", h,
		"curves", len(p.curves),
		"xmin", xmin, "xmax", xmax)

	if p.Grid {
		p.drawGrid(pl)
	}
	pl.frame()
	p.drawXAxis(pl)
	p.drawYAxis(pl)
	p.drawCurves(pl)
	if p.Legend {
		p.drawLegend(pl)
	}
	p.drawTitles(pl, w)
	return nil
}

// rangeFromData feeds the data envelope to both scales, honoring pinned
// ends. Scales other than Date, Linear, and Log manage their own range.
func (p *GraphPane) rangeFromData() {
	var minX, maxX, minY, maxY float64
	have := false
	for _, c := range p.curves {
		cnx, cxx, cny, cxy, ok := c.bounds()
		if !ok {
			continue
		}
		if !have {
			minX, maxX, minY, maxY = cnx, cxx, cny, cxy
			have = true
			continue
		}
		if cnx < minX {
			minX = cnx
		}
		if cxx > maxX {
			maxX = cxx
		}
		if cny < minY {
			minY = cny
		}
		if cxy > maxY {
			maxY = cxy
		}
	}
	if !have {
		return
	}
	applyRange(p.XAxis.Scale, minX, maxX)
	applyRange(p.YAxis.Scale, minY, maxY)
}

func applyRange(s scale.Scale, lo, hi float64) {
	switch sc := s.(type) {
	case *scale.Date:
		if sc.MinAuto {
			sc.Min = lo
		}
		if sc.MaxAuto {
			sc.Max = hi
		}
	case *scale.Linear:
		if sc.MinAuto {
			sc.Min = lo
		}
		if sc.MaxAuto {
			sc.Max = hi
		}
	case *scale.Log:
		if sc.MinAuto {
			sc.Min = lo
		}
		if sc.MaxAuto {
			sc.Max = hi
		}
	}
}

// widestXLabel returns the longest current X tick label, used as the
// sample for measured overlap estimates.
func (p *GraphPane) widestXLabel() string {
	var widest string
	for _, t := range p.XAxis.Scale.MajorTicks() {
		if l := p.XAxis.label(t.Value); len(l) > len(widest) {
			widest = l
		}
	}
	return widest
}

// plot maps axis units into the pixel rectangle [x0,x1] x [y0,y1].
type plot struct {
	r              LineRenderer
	x0, y0, x1, y1 float64

	fx, fy                   func(float64) float64
	xmin, xspan, ymin, yspan float64 // in transformed units
}

// transformer is implemented by scales whose pixel mapping is not linear
// in the value (log axes).
type transformer interface {
	Transform(v float64) float64
}

func transformOf(s scale.Scale) func(float64) float64 {
	if t, ok := s.(transformer); ok {
		return t.Transform
	}
	return func(v float64) float64 { return v }
}

func (pl *plot) setRanges(x, y scale.Scale) {
	pl.fx = transformOf(x)
	pl.fy = transformOf(y)
	min, max := x.Range()
	pl.xmin, pl.xspan = pl.fx(min), pl.fx(max)-pl.fx(min)
	min, max = y.Range()
	pl.ymin, pl.yspan = pl.fy(min), pl.fy(max)-pl.fy(min)
}

func (pl *plot) xPix(v float64) float64 {
	return pl.x0 + (pl.fx(v)-pl.xmin)/pl.xspan*(pl.x1-pl.x0)
}

func (pl *plot) yPix(v float64) float64 {
	return pl.y1 - (pl.fy(v)-pl.ymin)/pl.yspan*(pl.y1-pl.y0)
}

// contains reports whether the pixel (x, y) lies in the plot rectangle,
// with half a pixel of slack for rounding at the edges.
func (pl *plot) contains(x, y float64) bool {
	return x >= pl.x0-0.5 && x <= pl.x1+0.5 && y >= pl.y0-0.5 && y <= pl.y1+0.5
}

func (pl *plot) frame() {
	pl.r.Line(pl.x0, pl.y0, pl.x1, pl.y0, Black)
	pl.r.Line(pl.x1, pl.y0, pl.x1, pl.y1, Black)
	pl.r.Line(pl.x1, pl.y1, pl.x0, pl.y1, Black)
	pl.r.Line(pl.x0, pl.y1, pl.x0, pl.y0, Black)
}

func (p *GraphPane) drawGrid(pl plot) {
	for _, t := range p.XAxis.Scale.MajorTicks() {
		x := pl.xPix(t.Value)
		pl.r.Line(x, pl.y0, x, pl.y1, gridColor)
	}
	for _, t := range p.YAxis.Scale.MajorTicks() {
		y := pl.yPix(t.Value)
		pl.r.Line(pl.x0, y, pl.x1, y, gridColor)
	}
}

func (p *GraphPane) drawXAxis(pl plot) {
	for _, v := range p.XAxis.Scale.MinorTicks() {
		x := pl.xPix(v)
		pl.r.Line(x, pl.y1, x, pl.y1+minorTickLen, Black)
	}

	culler := newLabelCuller(int(pl.x1-pl.x0) + 1)
	dropped := 0
	for _, t := range p.XAxis.Scale.MajorTicks() {
		x := pl.xPix(t.Value)
		pl.r.Line(x, pl.y1, x, pl.y1+majorTickLen, Black)

		label := p.XAxis.label(t.Value)
		tw := pl.r.TextWidth(label)
		lx := x - tw/2
		if p.opts.cullOverlap {
			lo := int(lx - pl.x0 - p.opts.labelGapPx/2)
			hi := int(lx - pl.x0 + tw + p.opts.labelGapPx/2)
			if !culler.claim(lo, hi) {
				dropped++
				continue
			}
		}
		pl.r.Text(lx, pl.y1+xLabelDrop, label, Black)
	}
	if dropped > 0 {
		Logger().Warn("axis labels dropped to avoid overlap", "axis", "x", "dropped", dropped)
	}
}

func (p *GraphPane) drawYAxis(pl plot) {
	for _, v := range p.YAxis.Scale.MinorTicks() {
		y := pl.yPix(v)
		pl.r.Line(pl.x0-minorTickLen, y, pl.x0, y, Black)
	}

	culler := newLabelCuller(int(pl.y1-pl.y0) + 1)
	for _, t := range p.YAxis.Scale.MajorTicks() {
		y := pl.yPix(t.Value)
		pl.r.Line(pl.x0-majorTickLen, y, pl.x0, y, Black)

		label := p.YAxis.label(t.Value)
		if p.opts.cullOverlap {
			lo := int(y - pl.y0 - lineHeightPx/2)
			hi := int(y - pl.y0 + lineHeightPx/2)
			if !culler.claim(lo, hi) {
				continue
			}
		}
		pl.r.Text(pl.x0-yLabelPad-pl.r.TextWidth(label), y+4, label, Black)
	}
}

// drawCurves connects consecutive points. Points outside the picked
// ranges (for example nonpositive values on a log axis) are skipped
// rather than clipped.
func (p *GraphPane) drawCurves(pl plot) {
	for _, c := range p.curves {
		for i := 1; i < len(c.Points); i++ {
			a, b := c.Points[i-1], c.Points[i]
			ax, ay := pl.xPix(a.X), pl.yPix(a.Y)
			bx, by := pl.xPix(b.X), pl.yPix(b.Y)
			if !pl.contains(ax, ay) || !pl.contains(bx, by) {
				continue
			}
			pl.r.Line(ax, ay, bx, by, c.Color)
		}
	}
}

func (p *GraphPane) drawLegend(pl plot) {
	y := pl.y0 + lineHeightPx
	for _, c := range p.curves {
		if c.Name == "" {
			continue
		}
		pl.r.Line(pl.x0+8, y-4, pl.x0+26, y-4, c.Color)
		pl.r.Text(pl.x0+30, y, c.Name, Black)
		y += lineHeightPx
	}
}

func (p *GraphPane) drawTitles(pl plot, w int) {
	if p.Title != "" {
		tw := pl.r.TextWidth(p.Title)
		pl.r.Text((float64(w)-tw)/2, pl.y0-10, p.Title, Black)
	}
	if p.XAxis.Title != "" {
		tw := pl.r.TextWidth(p.XAxis.Title)
		pl.r.Text(pl.x0+(pl.x1-pl.x0-tw)/2, pl.y1+xLabelDrop+lineHeightPx, p.XAxis.Title, Black)
	}
	if p.YAxis.Title != "" {
		pl.r.Text(4, pl.y0-10, p.YAxis.Title, Black)
	}
}
