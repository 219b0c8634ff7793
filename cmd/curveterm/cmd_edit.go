package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"curveterm/cmd/curveterm/ui"
	"curveterm/internal/profile"
)

// editCmd launches the interactive control point editor.
var editCmd = &cobra.Command{
	Use:   "edit [profile]",
	Short: "Interactively tweak a profile's control points",
	Long: `Open a full screen editor seeded with the given profile (Balanced by
default). Arrow keys nudge the selected control point; the chart re-renders
live with markers at both control point positions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := "Balanced"
	if len(args) == 1 {
		name = args[0]
	}

	profiles, err := profile.Load(appConfig.UI.ProfilesPath)
	if err != nil {
		return err
	}
	prof, ok := profile.Find(profiles, name)
	if !ok {
		return fmt.Errorf("unknown profile %q (see 'curveterm profiles')", name)
	}

	styles := ui.NewStyles(ui.ThemeByName(appConfig.UI.Theme))
	model := ui.NewEditorModel(
		prof,
		appConfig.Chart.Points,
		appConfig.Chart.Height,
		styles,
		styles.Palette(appConfig.UI.NoColor),
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
