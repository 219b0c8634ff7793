package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"curveterm/internal/chart"
	"curveterm/internal/profile"
)

// editor movement steps. Fine mode is toggled with 'f'.
const (
	coarseStep = 0.05
	fineStep   = 0.01
)

// keyMap defines the editor key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Switch key.Binding
	Fine   key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Fine, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Switch, k.Fine, k.Reset},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "raise y")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "lower y")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move x left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move x right")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch control point")),
		Fine:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle fine steps")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset profile")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// EditorModel is the interactive control point editor page.
type EditorModel struct {
	width  int
	height int

	original profile.Profile
	current  profile.Profile
	selected int // 0 edits (X1,Y1), 1 edits (X2,Y2)
	fine     bool

	points      int
	chartHeight int
	palette     ChartPalette

	keys   keyMap
	help   help.Model
	styles Styles
}

// NewEditorModel creates an editor seeded with the given profile.
func NewEditorModel(p profile.Profile, points, chartHeight int, styles Styles, palette ChartPalette) EditorModel {
	return EditorModel{
		original:    p,
		current:     p,
		points:      points,
		chartHeight: chartHeight,
		palette:     palette,
		keys:        defaultKeyMap(),
		help:        help.New(),
		styles:      styles,
	}
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		step := coarseStep
		if m.fine {
			step = fineStep
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Switch):
			m.selected = 1 - m.selected
		case key.Matches(msg, m.keys.Fine):
			m.fine = !m.fine
		case key.Matches(msg, m.keys.Reset):
			m.current = m.original
		case key.Matches(msg, m.keys.Up):
			m.nudge(0, step)
		case key.Matches(msg, m.keys.Down):
			m.nudge(0, -step)
		case key.Matches(msg, m.keys.Left):
			m.nudge(-step, 0)
		case key.Matches(msg, m.keys.Right):
			m.nudge(step, 0)
		}
	}
	return m, nil
}

// nudge moves the selected control point, clamped to the unit square.
// Keeping x inside [0,1] keeps the curve x-monotonic and sampleable.
func (m *EditorModel) nudge(dx, dy float64) {
	if m.selected == 0 {
		m.current.X1 = clamp01(m.current.X1 + dx)
		m.current.Y1 = clamp01(m.current.Y1 + dy)
	} else {
		m.current.X2 = clamp01(m.current.X2 + dx)
		m.current.Y2 = clamp01(m.current.Y2 + dy)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// View implements tea.Model.
func (m EditorModel) View() string {
	header := m.styles.Header.Render("curveterm editor — " + m.current.Name)

	selectedDeco := chart.Styled(m.styles.Info.Bold(true))
	p1Deco, p2Deco := m.palette.Marker, m.palette.Marker
	if m.selected == 0 {
		p1Deco = selectedDeco
	} else {
		p2Deco = selectedDeco
	}

	cfg := chart.Config{
		Points: m.points,
		Height: m.chartHeight,
		Color:  m.palette.Series,
		Markers: []chart.Marker{
			{
				Position:     m.current.X1,
				Glyph:        '▲',
				Label:        fmt.Sprintf("P1 %.2f,%.2f", m.current.X1, m.current.Y1),
				VerticalLine: true,
				Decorate:     p1Deco,
			},
			{
				Position:     m.current.X2,
				Glyph:        '▲',
				Label:        fmt.Sprintf("P2 %.2f,%.2f", m.current.X2, m.current.Y2),
				VerticalLine: true,
				Decorate:     p2Deco,
			},
		},
		Zones: RampZones(m.points, m.palette.Zone),
	}

	body := chart.Render(m.current.Curve(), cfg)
	summary := m.styles.Subtitle.Render(m.current.Summary())

	mode := "coarse"
	if m.fine {
		mode = "fine"
	}
	status := m.styles.Footer.Render(fmt.Sprintf("editing P%d · %s steps", m.selected+1, mode))

	return header + "\n\n" + body + "\n\n" + summary + "\n" + status + "\n" + m.help.View(m.keys)
}

// RampZones splits the x axis into the three conventional aggressiveness
// regimes, sized to cover the full plot width.
func RampZones(points int, deco chart.Decorator) []chart.Zone {
	third := points / 3
	return []chart.Zone{
		{Label: "ramp-in", Width: third, Decorate: deco},
		{Label: "cruise", Width: third, Decorate: deco},
		{Label: "ramp-out", Width: points - 2*third, Decorate: deco},
	}
}
