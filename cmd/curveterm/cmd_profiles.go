package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"curveterm/cmd/curveterm/ui"
	"curveterm/internal/profile"
)

// profilesCmd lists the known profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List built-in and user-defined profiles",
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	profiles, err := profile.Load(appConfig.UI.ProfilesPath)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(ui.ThemeByName(appConfig.UI.Theme))
	table := ui.NewTable("Aggressiveness profiles", "Profile", "Control Points", "Description")
	for _, p := range profiles {
		table.AddRow(
			p.Name,
			fmt.Sprintf("(%.2f, %.2f) → (%.2f, %.2f)", p.X1, p.Y1, p.X2, p.Y2),
			p.Description,
		)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(styles))
	return nil
}
