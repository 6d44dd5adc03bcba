package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one label/value line of the table printed after a run.
type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary draws rows as a two-column table framed by rules.
func RenderSummary(rows []SummaryRow) string {
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
		valueWidth = max(valueWidth, lipgloss.Width(row.Value))
	}

	rule := dimStyle.Render(strings.Repeat("-", labelWidth+valueWidth+3))
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, rule)
	for _, row := range rows {
		label := lipgloss.PlaceHorizontal(labelWidth, lipgloss.Left, row.Label)
		lines = append(lines, fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(row.Value)))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

var valueStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
