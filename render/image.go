// Copyright 2026 The ZedGraph Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	zedgraph "github.com/DragonZX/ZedGraph"
)

// maxLineSteps bounds the pixel walk of a single line so wildly
// out-of-range endpoints cannot stall drawing.
const maxLineSteps = 1 << 20

// Image is a raster renderer drawing into an in-memory RGBA image.
type Image struct {
	rgba *image.RGBA
	face font.Face
}

var _ zedgraph.LineRenderer = (*Image)(nil)

// NewImage creates a white w x h surface. Labels use basicfont.Face7x13
// until SetFace installs another face.
func NewImage(w, h int) *Image {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range rgba.Pix {
		rgba.Pix[i] = 0xff
	}
	return &Image{rgba: rgba, face: basicfont.Face7x13}
}

// SetFace replaces the label face, for example with an opentype.Face.
// A nil face is ignored.
func (m *Image) SetFace(f font.Face) {
	if f != nil {
		m.face = f
	}
}

// RGBA exposes the backing image.
func (m *Image) RGBA() *image.RGBA { return m.rgba }

// Size implements zedgraph.LineRenderer.
func (m *Image) Size() (w, h int) {
	b := m.rgba.Bounds()
	return b.Dx(), b.Dy()
}

// Line implements zedgraph.LineRenderer with a one-pixel DDA walk.
// Pixels outside the image are discarded.
func (m *Image) Line(x0, y0, x1, y1 float64, c zedgraph.RGBA) {
	col := c.Color()
	dx, dy := x1-x0, y1-y0
	n := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if n > maxLineSteps {
		n = maxLineSteps
	}
	if n == 0 {
		m.rgba.Set(int(math.Round(x0)), int(math.Round(y0)), col)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		m.rgba.Set(int(math.Round(x0+t*dx)), int(math.Round(y0+t*dy)), col)
	}
}

// Text implements zedgraph.LineRenderer. The baseline starts at (x, y).
func (m *Image) Text(x, y float64, s string, c zedgraph.RGBA) {
	d := font.Drawer{
		Dst:  m.rgba,
		Src:  image.NewUniform(c.Color()),
		Face: m.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

// TextWidth implements zedgraph.LineRenderer.
func (m *Image) TextWidth(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, m.rgba)
}

// EncodePNG writes the image as PNG to w.
func (m *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.rgba)
}
