// Package chart renders sampled aggressiveness curves as annotated text
// charts. The glyph-level line drawing is delegated to asciigraph; this
// package owns the axis relabeling, the styled canvas, and the marker, label
// and zone overlays composited on top of the raw chart.
package chart

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"curveterm/internal/bezier"
)

// Defaults for a Render call when the corresponding Config field is zero.
const (
	DefaultPoints = 60
	DefaultHeight = 12
)

// defaultSeries is the conventional "positive" series color.
var defaultSeries = Styled(lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")))

// Config controls a single Render call. Zero-valued fields fall back to the
// documented defaults. The struct is single-use; nothing in it is retained
// across calls.
type Config struct {
	// Points is the number of sampled columns across the x axis. Must be at
	// least 2 when set. Default 60.
	Points int
	// Height is the number of chart rows. The renderer needs at least two
	// rows to pin both bounds; smaller values fall back to the default.
	// Default 12.
	Height int
	// Color styles the plotted curve glyphs. Default is the positive green;
	// pass NoColor for undecorated output.
	Color Decorator
	// YLabelFormat renders each axis label. The default is a right-justified
	// integer percentage, e.g. "  42%".
	YLabelFormat func(float64) string
	// Markers are composited under and across the chart.
	Markers []Marker
	// Zones are fixed-width bands on a final row under the chart.
	Zones []Zone
}

func (cfg Config) withDefaults() Config {
	if cfg.Points == 0 {
		cfg.Points = DefaultPoints
	}
	if cfg.Height < 2 {
		cfg.Height = DefaultHeight
	}
	if cfg.Color == nil {
		cfg.Color = defaultSeries
	}
	if cfg.YLabelFormat == nil {
		cfg.YLabelFormat = func(v float64) string { return fmt.Sprintf("%4.0f%%", v) }
	}
	return cfg
}

// Render samples the curve onto cfg.Points columns, plots it cfg.Height rows
// tall and composites the configured markers and zones on top. The result is
// a single string with embedded newlines.
func Render(curve bezier.Curve, cfg Config) string {
	cfg = cfg.withDefaults()
	series := curve.Sample(cfg.Points)
	lines, margin := plot(series, cfg.Height, cfg.YLabelFormat)

	canvas := NewCanvas(lines)
	for row := 0; row < canvas.Rows(); row++ {
		for col := margin; col < margin+cfg.Points; col++ {
			if canvas.At(row, col) != ' ' {
				canvas.Decorate(row, col, cfg.Color)
			}
		}
	}

	overlay(canvas, margin, cfg.Points, cfg.Markers, cfg.Zones)
	return canvas.String()
}
