// Package logging provides leveled, optionally colored log output with an
// optional file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"klafsa/internal/config"
	"klafsa/internal/tui"
)

// Logger writes timestamped level-prefixed lines. It is safe for concurrent
// use.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	file     *os.File
	filePath string
	verbose  bool
	color    bool
	styles   map[string]lipgloss.Style
}

// NewLogger initializes colors from cfg and optionally opens cfg.LogFile.
// Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		verbose: cfg.Verbose,
	}

	switch cfg.ColorMode {
	case config.ColorAlways:
		l.color = true
	case config.ColorNever:
		l.color = false
	case config.ColorAuto:
		l.color = IsTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
	l.styles = levelStyles(l.color)

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

func levelStyles(color bool) map[string]lipgloss.Style {
	r := lipgloss.NewRenderer(os.Stdout)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	base := r.NewStyle().Bold(true)
	return map[string]lipgloss.Style{
		"INFO":    base.Foreground(tui.ColorAccent),
		"SUCCESS": base.Foreground(tui.ColorSuccess),
		"WARN":    base.Foreground(tui.ColorWarn),
		"ERROR":   base.Foreground(tui.ColorError),
		"DEBUG":   base.Foreground(tui.ColorDim),
	}
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetOutput sends every level to w. A nil w restores stdout/stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		l.out, l.errOut = os.Stdout, os.Stderr
		return
	}
	l.out, l.errOut = w, w
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	tag := "[" + level + "]"
	if l.color {
		tag = l.styles[level].Render(tag)
	}
	_, _ = io.WriteString(out, ts+" "+tag+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr unless SetOutput redirected it.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
