package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Axis and guide glyphs shared with the charting collaborator. The overlay
// may overwrite these (and blanks) but never a plotted data glyph.
const (
	axisTee   = '┤'
	axisCross = '┼'
	guideBar  = '│'
)

// plot draws the series as raw chart lines through asciigraph, then rewrites
// the left axis labels through format. It returns the finished lines together
// with the left margin width (label columns plus the axis glyph) that all
// overlay arithmetic depends on.
func plot(series []float64, height int, format func(float64) string) (lines []string, margin int) {
	// asciigraph draws one row per integer step between the scaled bounds
	// inclusive, so request height-1 steps to get exactly height lines.
	raw := asciigraph.Plot(series,
		asciigraph.Height(height-1),
		asciigraph.Precision(0),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
	)
	lines = strings.Split(raw, "\n")

	labels := make([]string, len(lines))
	bodies := make([]string, len(lines))
	width := 0
	for i, line := range lines {
		runes := []rune(line)
		cut := axisIndex(runes)
		if cut < 0 {
			bodies[i] = line
			continue
		}
		label := strings.TrimSpace(string(runes[:cut]))
		if value, err := strconv.ParseFloat(label, 64); err == nil {
			label = format(value)
		}
		labels[i] = label
		bodies[i] = string(runes[cut:])
		if n := len([]rune(label)); n > width {
			width = n
		}
	}
	for i := range lines {
		if bodies[i] == lines[i] {
			continue // no axis glyph, leave the line untouched
		}
		lines[i] = fmt.Sprintf("%*s%s", width, labels[i], bodies[i])
	}
	return lines, width + 1
}

// axisIndex locates the axis glyph separating labels from the plot body.
func axisIndex(runes []rune) int {
	for i, r := range runes {
		if r == axisTee || r == axisCross {
			return i
		}
	}
	return -1
}
