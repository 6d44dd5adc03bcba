package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"klafsa/internal/processor"
)

type Model struct {
	updates    <-chan processor.Progress
	title      string
	started    time.Time
	width      int
	total      int
	completed  int
	compressed int
	skipped    int
	failed     int
	current    string
	quitting   bool
}

type doneMsg struct{}

type progressMsg processor.Progress

// NewModel renders progress read from updates until the channel is closed.
func NewModel(title string, updates <-chan processor.Progress) Model {
	return Model{updates: updates, title: title, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.total = msg.Total
		m.completed = msg.Completed
		switch msg.Outcome {
		case processor.OutcomeCompressed:
			m.compressed++
		case processor.OutcomeSkippedView, processor.OutcomeSkippedUnsupported:
			m.skipped++
		case processor.OutcomeFailed:
			m.failed++
		}
		m.current = fmt.Sprintf("%s -> %s", msg.Label, msg.Target)
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.completed) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	bar := renderBar(barWidth, ratio)
	elapsed := time.Since(m.started).Round(time.Millisecond)

	lines := []string{
		titleStyle.Render(m.title),
		labelStyle.Render(fmt.Sprintf("Textures: %d/%d", m.completed, m.total)) +
			dimStyle.Render(fmt.Sprintf("  compressed:%d skipped:%d", m.compressed, m.skipped)) +
			failStyle(m.failed).Render(fmt.Sprintf(" failed:%d", m.failed)),
		dimStyle.Render(fmt.Sprintf("Last: %s", m.current)),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		barStyle.Render(bar),
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan processor.Progress) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return progressMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func failStyle(failed int) lipgloss.Style {
	if failed > 0 {
		return errorStyle
	}
	return dimStyle
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorAccentAlt)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	errorStyle = lipgloss.NewStyle().Foreground(ColorError)
)
