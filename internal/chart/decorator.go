package chart

import "github.com/charmbracelet/lipgloss"

// Decorator transforms a fragment of already-laid-out text, typically by
// wrapping it in ANSI styling. Decorators must not change the visible width
// of the text. A nil Decorator leaves text unchanged.
type Decorator func(text string) string

// Styled adapts a lipgloss style into a Decorator.
func Styled(s lipgloss.Style) Decorator {
	return func(text string) string { return s.Render(text) }
}

// NoColor is the identity Decorator. Passing it explicitly suppresses the
// default series color without falling back to it.
var NoColor Decorator = func(text string) string { return text }
