package cli

import "github.com/charmbracelet/lipgloss"

// Color palette, kept close to the classic renderer: explored territory
// in yellow, the resolved path in green.
var (
	colorCyan   = lipgloss.Color("36")  // titles
	colorGreen  = lipgloss.Color("35")  // path / success
	colorYellow = lipgloss.Color("220") // frontier & explored
	colorRed    = lipgloss.Color("167") // failure
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleCurrent  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleFrontier = lipgloss.NewStyle().Foreground(colorYellow)
	styleVisited  = lipgloss.NewStyle().Foreground(colorYellow).Faint(true)
	stylePath     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleFailure  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
)
