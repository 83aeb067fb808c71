package zedgraph

// LineRenderer is the interface a GraphPane draws on.
// The render package provides PNG and SVG implementations.
type LineRenderer interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)

	// Line draws a one-pixel line from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 float64, c RGBA)

	// Text draws s with the left end of its baseline at (x, y).
	Text(x, y float64, s string, c RGBA)

	// TextWidth returns the rendered width of s in pixels.
	TextWidth(s string) float64
}
