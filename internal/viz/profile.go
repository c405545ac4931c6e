// Package viz renders per-node profiles and forcing series as terminal
// graphs for the CLI and the live view.
package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Header styles a section title.
func Header(title string) string {
	return headerStyle.Render(title)
}

// Profile plots a per-node quantity against node index.
func Profile(caption string, data []float64, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// KeyValue formats an aligned label/value row.
func KeyValue(label string, format string, args ...any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...))
}
