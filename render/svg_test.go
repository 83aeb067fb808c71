// Copyright 2026 The ZedGraph Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	zedgraph "github.com/DragonZX/ZedGraph"
)

func TestSVGEncode(t *testing.T) {
	s := NewSVG(200, 100)
	s.Line(0, 0, 199.337, 99, zedgraph.RGB(1, 0, 0))
	s.Text(10, 20, "hello", zedgraph.RGB(0, 0, 0))

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	doc := buf.String()

	for _, want := range []string{
		`viewBox="0 0 200 100"`,
		`<line x1="0" y1="0" x2="199.34" y2="99" stroke="#ff0000"`,
		`<text x="10" y="20" fill="#000000">hello</text>`,
		`</svg>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestSVGEscapesText(t *testing.T) {
	s := NewSVG(100, 100)
	s.Text(0, 10, "<5 & more>", zedgraph.RGB(0, 0, 0))

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if !strings.Contains(buf.String(), "&lt;5 &amp; more&gt;") {
		t.Errorf("label not escaped:\n%s", buf.String())
	}
}

func TestSVGTranslucentColor(t *testing.T) {
	s := NewSVG(100, 100)
	s.Line(0, 0, 10, 10, zedgraph.RGBA{R: 1, A: 0.5})

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if !strings.Contains(buf.String(), "rgba(255,0,0,") {
		t.Errorf("translucent stroke not in rgba() form:\n%s", buf.String())
	}
}

func TestSVGTextWidth(t *testing.T) {
	s := NewSVG(100, 100)
	if got := s.TextWidth(""); got != 0 {
		t.Errorf("TextWidth(\"\") = %v, want 0", got)
	}
	// 0.6 em per rune at 12px.
	if got := s.TextWidth("abcd"); got != 28.8 {
		t.Errorf("TextWidth(\"abcd\") = %v, want 28.8", got)
	}
}

func TestSVGSave(t *testing.T) {
	s := NewSVG(120, 80)
	s.Line(0, 0, 10, 10, zedgraph.RGB(0, 0, 1))

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("saved document is not closed")
	}
}

func TestPaneDrawsIntoSVG(t *testing.T) {
	pane := zedgraph.NewGraphPane()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	c := pane.AddCurve("series", nil)
	for i := 0; i < 10; i++ {
		c.AddTimePoint(start.AddDate(0, 0, i), float64(i))
	}

	s := NewSVG(640, 480)
	if err := pane.Draw(s); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	doc := buf.String()
	if !strings.Contains(doc, "<line") || !strings.Contains(doc, "<text") {
		t.Error("pane draw produced no primitives")
	}
}
