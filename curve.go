package zedgraph

import (
	"time"

	"github.com/DragonZX/ZedGraph/xdate"
)

// Point is a single data point. X is in axis units; on a date axis it is
// a serial day value (see the xdate package).
type Point struct {
	X, Y float64
}

// Curve is one plotted line and its data.
type Curve struct {
	// Name appears in the legend.
	Name string

	// Color is the line color. AddCurve assigns a palette color;
	// overwrite it to restyle.
	Color RGBA

	// Points holds the data in drawing order. Points are connected as
	// given; sort by X first for the usual left-to-right line.
	Points []Point
}

// AddPoint appends a data point.
func (c *Curve) AddPoint(x, y float64) {
	c.Points = append(c.Points, Point{X: x, Y: y})
}

// AddTimePoint appends a data point at t, converted to a serial day value.
func (c *Curve) AddTimePoint(t time.Time, y float64) {
	c.AddPoint(xdate.FromTime(t), y)
}

// bounds returns the data envelope. ok is false for an empty curve.
func (c *Curve) bounds() (minX, maxX, minY, maxY float64, ok bool) {
	if len(c.Points) == 0 {
		return 0, 0, 0, 0, false
	}
	p0 := c.Points[0]
	minX, maxX, minY, maxY = p0.X, p0.X, p0.Y, p0.Y
	for _, p := range c.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, maxX, minY, maxY, true
}
