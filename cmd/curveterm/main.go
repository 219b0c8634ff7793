// curveterm renders cubic Bezier aggressiveness profiles as annotated
// terminal charts: a one-shot render command, a profile listing, and an
// interactive control point editor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"curveterm/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	noColor    bool

	// Loaded once in PersistentPreRunE
	appConfig config.Config
	logger    *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "curveterm",
	Short: "Terminal visualizer for Bezier aggressiveness curves",
	Long: `curveterm draws cubic Bezier aggressiveness profiles as terminal charts.

A profile is two control points shaping a curve anchored at (0,0) and (1,1);
the y axis is the aggressiveness percentage at each point of the ramp.

Commands:
  render    render a profile (or explicit control points) as a chart
  profiles  list built-in and user-defined profiles
  edit      tweak control points interactively`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		appConfig, err = config.Load(path)
		if err != nil {
			return err
		}
		if noColor {
			appConfig.UI.NoColor = true
		}
		logger.Debug("configuration loaded",
			zap.String("path", path),
			zap.Int("points", appConfig.Chart.Points),
			zap.Int("height", appConfig.Chart.Height))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(editCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
