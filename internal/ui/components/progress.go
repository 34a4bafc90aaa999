package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/crumble/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label string
	// Percent is in [0, 100].
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Cells returns how many of width cells are filled.
func (p ProgressBar) Cells() (filled, empty int) {
	barWidth := max(p.Width, 4)
	filled = int(float64(barWidth) * p.Percent / 100)
	filled = min(max(filled, 0), barWidth)
	return filled, barWidth - filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Label.Render(p.Label))
	}

	filled, empty := p.Cells()
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", empty)))

	if p.ShowPercent {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %.0f%%", p.Percent)))
	}
	return b.String()
}
