package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"curveterm/cmd/curveterm/ui"
	"curveterm/internal/chart"
	"curveterm/internal/profile"
)

var (
	renderPoints int
	renderHeight int
	renderX1     float64
	renderY1     float64
	renderX2     float64
	renderY2     float64
	renderPlain  bool
)

// renderCmd draws one curve and exits.
var renderCmd = &cobra.Command{
	Use:   "render [profile]",
	Short: "Render an aggressiveness curve as a terminal chart",
	Long: `Render a named profile, or an ad-hoc curve given explicit control
points, as an annotated terminal chart. Without --plain the chart carries
markers at the control point x positions and a zone band row.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderPoints, "points", 0, "sampled columns (default from config)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "chart rows (default from config)")
	renderCmd.Flags().Float64Var(&renderX1, "x1", 0.25, "first control point x")
	renderCmd.Flags().Float64Var(&renderY1, "y1", 0.10, "first control point y")
	renderCmd.Flags().Float64Var(&renderX2, "x2", 0.75, "second control point x")
	renderCmd.Flags().Float64Var(&renderY2, "y2", 0.90, "second control point y")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "skip markers and zones")
}

func runRender(cmd *cobra.Command, args []string) error {
	prof, err := resolveProfile(args)
	if err != nil {
		return err
	}

	points := appConfig.Chart.Points
	if renderPoints != 0 {
		points = renderPoints
	}
	if points < 2 {
		return fmt.Errorf("--points must be at least 2")
	}
	height := appConfig.Chart.Height
	if renderHeight != 0 {
		height = renderHeight
	}
	logger.Debug("rendering curve",
		zap.String("profile", prof.Name),
		zap.Int("points", points),
		zap.Int("height", height))

	styles := ui.NewStyles(ui.ThemeByName(appConfig.UI.Theme))
	palette := styles.Palette(appConfig.UI.NoColor)

	cfg := chart.Config{
		Points: points,
		Height: height,
		Color:  palette.Series,
	}
	if !renderPlain {
		cfg.Markers = controlMarkers(prof, palette.Marker)
		cfg.Zones = ui.RampZones(points, palette.Zone)
	}

	fmt.Fprintln(cmd.OutOrStdout(), chart.Render(prof.Curve(), cfg))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Subtitle.Render(prof.Summary()))
	return nil
}

// resolveProfile picks the named profile, or builds an ad-hoc one from the
// control point flags when no name is given.
func resolveProfile(args []string) (profile.Profile, error) {
	if len(args) == 0 {
		return profile.Profile{
			Name: "Custom",
			X1:   renderX1, Y1: renderY1,
			X2: renderX2, Y2: renderY2,
		}, nil
	}

	profiles, err := profile.Load(appConfig.UI.ProfilesPath)
	if err != nil {
		return profile.Profile{}, err
	}
	prof, ok := profile.Find(profiles, args[0])
	if !ok {
		return profile.Profile{}, fmt.Errorf("unknown profile %q (see 'curveterm profiles')", args[0])
	}
	return prof, nil
}

// controlMarkers annotates the x positions of both control points.
func controlMarkers(p profile.Profile, deco chart.Decorator) []chart.Marker {
	return []chart.Marker{
		{
			Position:     p.X1,
			Glyph:        '▲',
			Label:        fmt.Sprintf("P1 %.2f,%.2f", p.X1, p.Y1),
			VerticalLine: true,
			Decorate:     deco,
		},
		{
			Position:     p.X2,
			Glyph:        '▲',
			Label:        fmt.Sprintf("P2 %.2f,%.2f", p.X2, p.Y2),
			VerticalLine: true,
			Decorate:     deco,
		},
	}
}
