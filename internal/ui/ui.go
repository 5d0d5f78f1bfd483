// Package ui provides styled terminal output for the rubank CLI.
// It uses the Charm.sh ecosystem for TUI styling with
// automatic fallback to plain text for non-TTY environments.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// UI holds the terminal state and provides styled output methods.
type UI struct {
	IsTTY   bool
	Width   int
	NoColor bool

	out io.Writer
}

// KV represents a key-value pair for summary displays.
type KV struct {
	Key   string
	Value string
}

// noColorEnv is the standard environment variable to disable colors.
var noColorEnv = os.Getenv("NO_COLOR") != ""

// New creates a UI writing to out. Styling is only used when out is a
// terminal.
func New(out io.Writer) *UI {
	u := &UI{Width: 80, NoColor: noColorEnv, out: out}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		u.IsTTY = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			u.Width = w
		}
	}
	return u
}

// SetNoColor disables colors.
func (u *UI) SetNoColor(noColor bool) {
	u.NoColor = noColor
}

// Println writes the rendered lines to the output.
func (u *UI) Println(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(u.out, l)
	}
}

// shouldStyle returns true if we should use styled output.
func (u *UI) shouldStyle() bool {
	return u.IsTTY && !u.NoColor
}

// Header renders a bordered header box.
func (u *UI) Header(title string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("=== %s ===", title)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2)

	return style.Render(title)
}

// KeyValue renders a styled key-value pair.
func (u *UI) KeyValue(key, value string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("%-10s %s", key+":", value)
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(12)
	valueStyle := lipgloss.NewStyle().
		Bold(true)

	return "  " + keyStyle.Render(key) + " " + valueStyle.Render(value)
}

// Success renders a success message with a green checkmark.
func (u *UI) Success(msg string) string {
	if !u.shouldStyle() {
		return "[OK] " + msg
	}

	return StyleSuccess.Render(SymbolSuccess+" ") + msg
}

// Error renders an error message with a red X.
func (u *UI) Error(msg string) string {
	if !u.shouldStyle() {
		return "[FAILED] " + msg
	}

	return StyleError.Render(SymbolError + " " + msg)
}

// Warning renders a warning message.
func (u *UI) Warning(msg string) string {
	if !u.shouldStyle() {
		return "[WARN] " + msg
	}

	return StyleWarning.Render(SymbolWarning + " " + msg)
}

// Muted renders muted/dim text.
func (u *UI) Muted(msg string) string {
	if !u.shouldStyle() {
		return msg
	}

	return StyleMuted.Render(msg)
}

// Reply renders the answer to a shell command. The text itself is never
// changed; on a terminal, refusals are colored by their kind.
func (u *UI) Reply(msg string, tone Tone) string {
	if !u.shouldStyle() {
		return msg
	}

	switch tone {
	case ToneWarning:
		return StyleWarning.Render(msg)
	case ToneError:
		return StyleError.Render(msg)
	default:
		return msg
	}
}

// Tone classifies a shell reply for coloring.
type Tone int

const (
	ToneNormal Tone = iota
	ToneWarning
	ToneError
)

// SummaryBox renders a bordered summary section.
func (u *UI) SummaryBox(title string, items []KV) string {
	if !u.shouldStyle() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "\n=== %s ===\n", title)
		for _, item := range items {
			fmt.Fprintf(&sb, "%-14s %s\n", item.Key+":", item.Value)
		}
		return sb.String()
	}

	maxKeyWidth := 0
	for _, item := range items {
		maxKeyWidth = max(maxKeyWidth, len(item.Key))
	}

	var lines []string
	for _, item := range items {
		keyStyle := lipgloss.NewStyle().Foreground(ColorMuted).Width(maxKeyWidth + 2)
		valueStyle := lipgloss.NewStyle().Bold(true)

		value := item.Value
		if item.Key == "Skipped" && value != "0" {
			value = StyleWarning.Render(value)
		} else {
			value = valueStyle.Render(value)
		}

		lines = append(lines, "  "+keyStyle.Render(item.Key)+" "+value)
	}
	content := strings.Join(lines, "\n")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess)

	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1)

	return "\n" + titleStyle.Render("  "+title) + "\n" + boxStyle.Render(content)
}
