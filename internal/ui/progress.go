package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar shows how many records of a bulk load have been read.
type ProgressBar struct {
	ui       *UI
	bar      progress.Model
	label    string
	total    int
	current  int
	rendered bool
}

// NewProgressBar creates a new progress bar.
func (u *UI) NewProgressBar(label string, total int) *ProgressBar {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return &ProgressBar{
		ui:    u,
		bar:   bar,
		label: label,
		total: total,
	}
}

// Update sets the current progress value.
func (p *ProgressBar) Update(current int) {
	p.current = current
	p.render()
}

// Increment advances the bar by one record.
func (p *ProgressBar) Increment() {
	p.Update(p.current + 1)
}

func (p *ProgressBar) render() {
	if !p.ui.shouldStyle() {
		if !p.rendered {
			fmt.Fprintf(p.ui.out, "%s: ", p.label)
			p.rendered = true
		}
		return
	}

	pct := 1.0
	if p.total > 0 {
		pct = min(float64(p.current)/float64(p.total), 1)
	}

	labelStyle := lipgloss.NewStyle().Width(18)
	countStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(p.ui.out, "\r\033[K  %s %s %s",
		labelStyle.Render(p.label),
		p.bar.ViewAs(pct),
		countStyle.Render(fmt.Sprintf("%d/%d", p.current, p.total)),
	)
}

// Complete finishes the progress bar, noting how many records were skipped.
func (p *ProgressBar) Complete(skipped int) {
	done := fmt.Sprintf("%d/%d loaded", p.current-skipped, p.total)

	if !p.ui.shouldStyle() {
		if !p.rendered {
			fmt.Fprintf(p.ui.out, "%s: ", p.label)
		}
		fmt.Fprintln(p.ui.out, done)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(18)
	symbol, style := SymbolSuccess, StyleSuccess
	if skipped > 0 {
		symbol, style = SymbolWarning, StyleWarning
	}

	fmt.Fprintf(p.ui.out, "\r\033[K  %s %s %s\n",
		style.Render(symbol),
		labelStyle.Render(p.label),
		style.Render(done),
	)
}

// Fail finishes the progress bar with an error indicator.
func (p *ProgressBar) Fail(err error) {
	if !p.ui.shouldStyle() {
		fmt.Fprintf(p.ui.out, "FAILED: %v\n", err)
		return
	}

	labelStyle := lipgloss.NewStyle().Width(18)

	fmt.Fprintf(p.ui.out, "\r\033[K  %s %s %s\n",
		StyleError.Render(SymbolError),
		labelStyle.Render(p.label),
		StyleError.Render(err.Error()),
	)
}
