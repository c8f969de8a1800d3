package export

import (
	"strings"
	"testing"

	"github.com/san-kum/diffsim/internal/diffusion"
)

func TestProfileSVG(t *testing.T) {
	grid, err := diffusion.NewGrid(0, 5, 0.5)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	c := diffusion.StepProfile(grid.Len(), 500, 0)

	svg := ProfileSVG(grid, c, "Final concentration profile")

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing polyline")
	}
	if !strings.Contains(svg, "Final concentration profile") {
		t.Error("missing title")
	}
	if !strings.Contains(svg, ">x</text>") || !strings.Contains(svg, ">C</text>") {
		t.Error("missing axis labels")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("not closed")
	}
}

func TestProfileSVGFlatProfile(t *testing.T) {
	grid, _ := diffusion.NewGrid(0, 5, 0.5)
	c := diffusion.StepProfile(grid.Len(), 100, 100)

	// Constant profile must not divide by a zero value range.
	svg := ProfileSVG(grid, c, "flat")
	if !strings.Contains(svg, "<polyline") {
		t.Error("flat profile should still render")
	}
	if strings.Contains(svg, "NaN") {
		t.Error("NaN leaked into coordinates")
	}
}

func TestProfileSVGDegenerate(t *testing.T) {
	grid, _ := diffusion.NewGrid(0, 5, 0.5)

	if svg := ProfileSVG(nil, diffusion.Field{1, 2}, "t"); svg != "" {
		t.Error("nil grid should produce empty output")
	}
	if svg := ProfileSVG(grid, diffusion.Field{1, 2}, "t"); svg != "" {
		t.Error("length mismatch should produce empty output")
	}
}

func TestProfileSVGEscapesTitle(t *testing.T) {
	grid, _ := diffusion.NewGrid(0, 5, 0.5)
	c := diffusion.StepProfile(grid.Len(), 500, 0)

	svg := ProfileSVG(grid, c, "a <b> & c")
	if strings.Contains(svg, "<b>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "a &lt;b&gt; &amp; c") {
		t.Error("escaped title missing")
	}
}
