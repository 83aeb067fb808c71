package labelfit

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/DragonZX/ZedGraph/internal/widthcache"
)

// widthCacheLimit bounds the per-Shaper label memoization. Axis redraws
// cycle through a few dozen labels; the limit only matters when one
// Shaper serves many panes.
const widthCacheLimit = 512

// Shaper measures labels with HarfBuzz shaping via go-text/typesetting,
// so kerning, ligatures, and complex scripts affect the width. Measured
// widths are memoized per label text.
//
// Shaper is safe for concurrent use. The parsed font.Font is read-only;
// each measurement builds a lightweight font.Face and borrows a pooled
// HarfbuzzShaper, since neither of those is safe for concurrent use.
type Shaper struct {
	font   *font.Font
	sizePx float64
	widths *widthcache.Cache

	shaperPool sync.Pool
}

// NewShaper parses TTF or OTF font data and returns a Shaper measuring at
// sizePx pixels. It returns ErrNoFont when data is empty.
func NewShaper(data []byte, sizePx float64) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("labelfit: parse font: %w", err)
	}
	return &Shaper{
		font:   face.Font,
		sizePx: sizePx,
		widths: widthcache.New(widthCacheLimit),
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// Width returns the advance width of label in pixels.
func (s *Shaper) Width(label string) float64 {
	if label == "" {
		return 0
	}
	return s.widths.Width(label, s.shape)
}

// MaxLabels implements Estimator.
func (s *Shaper) MaxLabels(axis Axis, sample string) int {
	return fit(axis, s.Width(sample))
}

// shape measures label by shaping it as a single left-to-right run.
func (s *Shaper) shape(label string) float64 {
	runes := []rune(label)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.Int26_6(s.sizePx * 64),
		Script:    runScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// runScript returns the script of the first non-space rune. Labels are
// single runs; mixed-script text should be split before measuring.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
