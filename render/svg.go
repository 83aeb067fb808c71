// Copyright 2026 The ZedGraph Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"os"
	"text/template"
	"unicode/utf8"

	zedgraph "github.com/DragonZX/ZedGraph"
)

// SVG is a vector renderer assembling an SVG document.
//
// Text widths are estimated from the font size (0.6 em per rune), so
// label culling is approximate; the viewer's font does the final
// layout.
type SVG struct {
	w, h       int
	fontSizePx float64
	lines      []svgLine
	texts      []svgText
}

var _ zedgraph.LineRenderer = (*SVG)(nil)

type svgLine struct {
	X0, Y0, X1, Y1 float64
	Color          string
}

type svgText struct {
	X, Y  float64
	S     string
	Color string
}

// NewSVG creates an empty w x h document with 12px text.
func NewSVG(w, h int) *SVG {
	return &SVG{w: w, h: h, fontSizePx: 12}
}

// Size implements zedgraph.LineRenderer.
func (s *SVG) Size() (w, h int) { return s.w, s.h }

// Line implements zedgraph.LineRenderer.
func (s *SVG) Line(x0, y0, x1, y1 float64, c zedgraph.RGBA) {
	s.lines = append(s.lines, svgLine{
		X0: round2(x0), Y0: round2(y0),
		X1: round2(x1), Y1: round2(y1),
		Color: cssColor(c),
	})
}

// Text implements zedgraph.LineRenderer.
func (s *SVG) Text(x, y float64, str string, c zedgraph.RGBA) {
	s.texts = append(s.texts, svgText{
		X: round2(x), Y: round2(y),
		S:     html.EscapeString(str),
		Color: cssColor(c),
	})
}

// TextWidth implements zedgraph.LineRenderer.
func (s *SVG) TextWidth(str string) float64 {
	return float64(utf8.RuneCountInString(str)) * s.fontSizePx * 0.6
}

// Encode writes the SVG document to w.
func (s *SVG) Encode(w io.Writer) error {
	return svgTmpl.Execute(w, svgDoc{
		W: s.w, H: s.h,
		FontSize: s.fontSizePx,
		Lines:    s.lines,
		Texts:    s.texts,
	})
}

// Save writes the SVG document to a file.
func (s *SVG) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return s.Encode(f)
}

type svgDoc struct {
	W, H     int
	FontSize float64
	Lines    []svgLine
	Texts    []svgText
}

var svgTmpl = template.Must(template.New("svg").Parse(svgTemplate))

const svgTemplate = `<?xml version="1.0"?>
<svg viewBox="0 0 {{.W}} {{.H}}" xmlns="http://www.w3.org/2000/svg" font-family="Arial, sans-serif" font-size="{{.FontSize}}px">
<rect x="0" y="0" width="{{.W}}" height="{{.H}}" fill="white"/>
{{range .Lines}}<line x1="{{.X0}}" y1="{{.Y0}}" x2="{{.X1}}" y2="{{.Y1}}" stroke="{{.Color}}" stroke-width="1"/>
{{end}}{{range .Texts}}<text x="{{.X}}" y="{{.Y}}" fill="{{.Color}}">{{.S}}</text>
{{end}}</svg>
`

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func cssColor(c zedgraph.RGBA) string {
	nc := c.Color().(color.NRGBA)
	if nc.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", nc.R, nc.G, nc.B, float64(nc.A)/255)
}
