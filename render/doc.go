// Copyright 2026 The ZedGraph Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides output surfaces for drawing graph panes.
//
// Two renderers implement zedgraph.LineRenderer:
//
//   - Image: an in-memory RGBA raster with PNG encoding. Labels draw
//     with a golang.org/x/image font.Face; the default is the built-in
//     basicfont.Face7x13, swappable via SetFace.
//   - SVG: a vector document assembled with text/template, viewable in
//     any browser. Text widths are estimated from the font size rather
//     than shaped.
//
// Renderers are plain drawing surfaces with no pane state; reuse one to
// draw several panes onto the same output.
//
// # Usage
//
//	img := render.NewImage(800, 600)
//	if err := pane.Draw(img); err != nil {
//		return err
//	}
//	return img.SavePNG("chart.png")
package render
