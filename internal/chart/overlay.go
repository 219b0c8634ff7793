package chart

import (
	"sort"
	"strings"
)

// Marker annotates a single chart column, optionally with a vertical guide
// line and a text label on the rows below the chart.
type Marker struct {
	// Position is either normalized across the sampled points when <= 1, or
	// an absolute column offset into the plot area when greater than 1.
	Position float64
	// Glyph is drawn on the marker row under the chart. Zero means no glyph.
	Glyph rune
	// Label, when non-empty, is placed on the shared label row. Labels never
	// overlap; a crowded label slides right past its marker column.
	Label string
	// VerticalLine draws LineGlyph down the chart body at the marker column.
	VerticalLine bool
	// LineGlyph is the guide glyph, defaulting to '│'.
	LineGlyph rune
	// Decorate styles everything the marker draws.
	Decorate Decorator
}

// Zone is a fixed-width text band under the chart annotating a contiguous
// horizontal region of the x axis. Zones are laid out left to right in input
// order; widths are trusted to fit the chart.
type Zone struct {
	Label    string
	Width    int
	Decorate Decorator
}

// column resolves the marker position to an absolute canvas column.
func (m Marker) column(margin, points int) int {
	if m.Position <= 1 {
		return margin + int(m.Position*float64(points-1))
	}
	return margin + int(m.Position)
}

// overwritable reports whether a glyph may be replaced by a vertical guide.
// Plotted data glyphs never qualify, so a guide can cross the curve without
// hiding it.
func overwritable(r rune) bool {
	return r == ' ' || r == guideBar || r == axisTee || r == axisCross
}

// overlay composites markers and zones onto the rendered chart, in order:
// vertical guide lines, the marker glyph row, the greedy label row, and the
// zone row. margin and points describe the chart geometry the canvas was
// built with. With no markers and no zones the canvas is left untouched.
func overlay(canvas *Canvas, margin, points int, markers []Marker, zones []Zone) {
	chartRows := canvas.Rows()
	limit := margin + points

	for _, m := range markers {
		if !m.VerticalLine {
			continue
		}
		col := m.column(margin, points)
		if col < margin || col >= limit {
			continue
		}
		glyph := m.LineGlyph
		if glyph == 0 {
			glyph = guideBar
		}
		// Row 0 holds the upper bound of the plot; guides start below it.
		for row := 1; row < chartRows; row++ {
			if overwritable(canvas.At(row, col)) {
				canvas.Set(row, col, glyph, m.Decorate)
			}
		}
	}

	hasGlyph := false
	hasLabel := false
	for _, m := range markers {
		hasGlyph = hasGlyph || m.Glyph != 0
		hasLabel = hasLabel || m.Label != ""
	}

	if hasGlyph {
		row := canvas.AppendRow()
		for _, m := range markers {
			col := m.column(margin, points)
			if m.Glyph == 0 || col < margin || col >= limit {
				continue
			}
			// First marker in input order wins a contested column.
			if canvas.At(row, col) == ' ' {
				canvas.Set(row, col, m.Glyph, m.Decorate)
			}
		}
	}

	if hasLabel {
		labeled := make([]Marker, 0, len(markers))
		for _, m := range markers {
			if m.Label != "" {
				labeled = append(labeled, m)
			}
		}
		sort.SliceStable(labeled, func(i, j int) bool {
			return labeled[i].column(margin, points) < labeled[j].column(margin, points)
		})
		row := canvas.AppendRow()
		cursor := 0
		for _, m := range labeled {
			start := m.column(margin, points)
			if start < cursor {
				start = cursor
			}
			runes := []rune(m.Label)
			for i, r := range runes {
				canvas.Set(row, start+i, r, m.Decorate)
			}
			cursor = start + len(runes) + 1
		}
	}

	if len(zones) > 0 {
		row := canvas.AppendRow()
		col := margin
		for _, z := range zones {
			for i, r := range []rune(padToWidth(z.Label, z.Width)) {
				canvas.Set(row, col+i, r, z.Decorate)
			}
			col += z.Width
		}
	}
}

// padToWidth centers s within exactly width columns, truncating when the
// label is wider than its zone.
func padToWidth(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
