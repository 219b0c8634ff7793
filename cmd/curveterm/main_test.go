package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with a missing config file so defaults apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag variables are package globals; reset what earlier tests may have set.
	renderPoints, renderHeight, renderPlain = 0, 0, false
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCommandPlain(t *testing.T) {
	out, err := execute(t, "render", "--plain", "--no-color", "--points", "30", "--height", "8")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "100%") {
		t.Fatalf("expected axis labels in output:\n%s", out)
	}
	if !strings.Contains(out, "Custom (0.25, 0.10) → (0.75, 0.90)") {
		t.Fatalf("expected summary line in output:\n%s", out)
	}
}

func TestRenderNamedProfile(t *testing.T) {
	out, err := execute(t, "render", "balanced", "--no-color")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Balanced (0.25, 0.10) → (0.75, 0.90)") {
		t.Fatalf("expected Balanced summary:\n%s", out)
	}
	if !strings.Contains(out, "cruise") {
		t.Fatalf("expected zone band row:\n%s", out)
	}
}

func TestRenderUnknownProfile(t *testing.T) {
	_, err := execute(t, "render", "no-such-profile")
	if err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}

func TestRenderRejectsTooFewPoints(t *testing.T) {
	_, err := execute(t, "render", "--points", "1")
	if err == nil {
		t.Fatalf("expected error for --points 1")
	}
}

func TestProfilesCommand(t *testing.T) {
	out, err := execute(t, "profiles")
	if err != nil {
		t.Fatalf("profiles failed: %v", err)
	}
	for _, want := range []string{"Conservative", "Balanced", "Aggressive", "(0.25, 0.10) → (0.75, 0.90)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in listing:\n%s", want, out)
		}
	}
}
