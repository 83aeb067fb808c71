// Package zedgraph draws 2D line charts with calendar-aware axes.
//
// # Overview
//
// zedgraph is a pure Go charting library centered on one hard problem:
// picking readable tick steps for date-time axes. Axis ranges spanning
// centuries down to fractions of a second get calendar-aware major and
// minor steps, chosen so labels land on natural boundaries (years,
// month starts, midnights, whole hours) instead of arbitrary multiples
// of a day.
//
// # Quick Start
//
//	import (
//		"github.com/DragonZX/ZedGraph"
//		"github.com/DragonZX/ZedGraph/render"
//	)
//
//	pane := zedgraph.NewGraphPane(zedgraph.WithTitle("Throughput"))
//	curve := pane.AddCurve("requests", nil)
//	for i, v := range samples {
//		curve.AddTimePoint(start.Add(time.Duration(i)*time.Hour), v)
//	}
//
//	img := render.NewImage(800, 600)
//	if err := pane.Draw(img); err != nil {
//		log.Fatal(err)
//	}
//	img.SavePNG("throughput.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: GraphPane, Axis, Curve, LineRenderer
//   - scale: tick selection for date, linear, and logarithmic axes
//   - xdate: serial day values and proleptic Gregorian conversions
//   - labelfit: text measurement for label overlap estimates
//   - render: PNG and SVG renderers
//
// # Coordinate System
//
// Rendering uses standard computer graphics coordinates: origin at the
// top-left, X increasing right, Y increasing down. Data coordinates map
// into the plot rectangle with Y flipped, so larger values draw higher.
//
// # Dates
//
// Date axes carry time as serial day values: day 0 is 1899-12-30 UTC
// and hours are fractions of a day. The xdate package converts between
// serial values, calendar fields, and time.Time.
package zedgraph

// Version information
const (
	// Version is the current version of the library
	Version = "0.9.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 9

	// VersionPatch is the patch version
	VersionPatch = 0
)
