// Package profile defines named aggressiveness profiles: a display name, an
// optional description, and the two Bezier control points that shape the
// curve. Field names mirror the server's JSON schema so profiles round-trip
// through either YAML or JSON unchanged.
package profile

import (
	"fmt"
	"strings"

	"curveterm/internal/bezier"
)

// Profile is a named curve definition.
type Profile struct {
	Name        string  `yaml:"profile_name" json:"profile_name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	X1          float64 `yaml:"control_x1" json:"control_x1"`
	Y1          float64 `yaml:"control_y1" json:"control_y1"`
	X2          float64 `yaml:"control_x2" json:"control_x2"`
	Y2          float64 `yaml:"control_y2" json:"control_y2"`
}

// Curve returns the profile's control points as a sampleable curve.
func (p Profile) Curve() bezier.Curve {
	return bezier.Curve{X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2}
}

// Summary renders the profile's control points on a single line, e.g.
// "Balanced (0.25, 0.10) → (0.75, 0.90)".
func (p Profile) Summary() string {
	return fmt.Sprintf("%s (%.2f, %.2f) → (%.2f, %.2f)", p.Name, p.X1, p.Y1, p.X2, p.Y2)
}

// Builtins returns the profiles that ship with the tool. All of them keep
// both control x coordinates inside [0,1], which guarantees the curve is
// x-monotonic and therefore cleanly sampleable.
func Builtins() []Profile {
	return []Profile{
		{
			Name:        "Conservative",
			Description: "Slow start, most of the ramp late",
			X1:          0.4, Y1: 0.05,
			X2: 0.9, Y2: 0.6,
		},
		{
			Name:        "Balanced",
			Description: "Moderate ramp with smooth ends",
			X1:          0.25, Y1: 0.1,
			X2: 0.75, Y2: 0.9,
		},
		{
			Name:        "Aggressive",
			Description: "Fast early ramp, long plateau",
			X1:          0.1, Y1: 0.6,
			X2: 0.45, Y2: 0.95,
		},
	}
}

// Find returns the profile with the given name, matched case-insensitively.
func Find(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}
