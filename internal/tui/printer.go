package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Printer is an io.Writer that prints each write above a running program's
// view. Writes after the program exits are dropped.
type Printer struct {
	Program *tea.Program
}

func (p Printer) Write(b []byte) (int, error) {
	line := strings.TrimRight(string(b), "\n")
	p.Program.Send(tea.Println(line)())
	return len(b), nil
}
