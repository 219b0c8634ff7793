package chart

import (
	"strings"
	"testing"

	"curveterm/internal/bezier"
)

var balanced = bezier.Curve{X1: 0.25, Y1: 0.1, X2: 0.75, Y2: 0.9}

func TestRenderLineCountBareChart(t *testing.T) {
	out := Render(balanced, Config{Height: 10, Points: 30, Color: NoColor})
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 chart lines, got %d:\n%s", len(lines), out)
	}
}

func TestRenderLineCountWithOverlays(t *testing.T) {
	cfg := Config{
		Height: 12,
		Points: 40,
		Color:  NoColor,
		Markers: []Marker{
			{Position: 0.25, Glyph: '▲', Label: "P1", VerticalLine: true},
			{Position: 0.75, Glyph: '▲', Label: "P2", VerticalLine: true},
		},
		Zones: []Zone{
			{Label: "ramp", Width: 20},
			{Label: "cruise", Width: 20},
		},
	}
	out := Render(balanced, cfg)
	lines := strings.Split(out, "\n")
	// Chart rows + marker row + label row + zone row.
	if len(lines) != 12+3 {
		t.Fatalf("expected 15 lines, got %d:\n%s", len(lines), out)
	}
}

func TestRenderHeightBelowFloorFallsBackToDefault(t *testing.T) {
	// A single row cannot pin both bounds of the scale, so heights below 2
	// are treated like an unset height.
	out := Render(balanced, Config{Height: 1, Points: 30, Color: NoColor})
	lines := strings.Split(out, "\n")
	if len(lines) != DefaultHeight {
		t.Fatalf("expected %d lines for height below the floor, got %d", DefaultHeight, len(lines))
	}
}

func TestRenderDefaultAxisLabels(t *testing.T) {
	out := Render(balanced, Config{Color: NoColor})
	lines := strings.Split(out, "\n")
	if len(lines) != DefaultHeight {
		t.Fatalf("expected %d default lines, got %d", DefaultHeight, len(lines))
	}
	if !strings.HasPrefix(lines[0], " 100%") {
		t.Fatalf("top line should carry the 100%% label: %q", lines[0])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "   0%") {
		t.Fatalf("bottom line should carry the 0%% label: %q", lines[len(lines)-1])
	}
	// The default label format is 5 columns, the axis glyph the 6th.
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) < 6 || (runes[5] != axisTee && runes[5] != axisCross) {
			t.Fatalf("line %d: expected axis glyph at column 5: %q", i, line)
		}
	}
}

func TestRenderCustomYLabelFormat(t *testing.T) {
	cfg := Config{
		Color:        NoColor,
		YLabelFormat: func(v float64) string { return strings.Repeat("#", 3) },
	}
	out := Render(balanced, cfg)
	for i, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "###") {
			t.Fatalf("line %d: custom label format not applied: %q", i, line)
		}
	}
}

func TestRenderGuideDoesNotHideCurve(t *testing.T) {
	plain := Render(balanced, Config{Height: 12, Points: 40, Color: NoColor})
	marked := Render(balanced, Config{
		Height:  12,
		Points:  40,
		Color:   NoColor,
		Markers: []Marker{{Position: 0.5, VerticalLine: true}},
	})
	plainLines := strings.Split(plain, "\n")
	markedLines := strings.Split(marked, "\n")
	if len(plainLines) != len(markedLines) {
		t.Fatalf("a line-only marker must not append rows: %d vs %d", len(plainLines), len(markedLines))
	}
	// Wherever the two renders differ, the original glyph was a blank.
	for i := range plainLines {
		p, m := []rune(plainLines[i]), []rune(markedLines[i])
		for j := range p {
			if j < len(m) && p[j] != m[j] && p[j] != ' ' {
				t.Fatalf("line %d col %d: %q was overwritten by %q", i, j, p[j], m[j])
			}
		}
	}
}

func TestRenderSeriesColorApplied(t *testing.T) {
	colored := Render(balanced, Config{Height: 8, Points: 20, Color: func(s string) string { return "<" + s + ">" }})
	if !strings.Contains(colored, "<") {
		t.Fatalf("series decorator was not applied:\n%s", colored)
	}
	// Axis labels stay undecorated.
	if strings.Contains(strings.Split(colored, "\n")[0][:5], "<") {
		t.Fatalf("axis labels must not be decorated")
	}
}
