package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// DefenseBar renders the defense-percent gauge as a filled bar.
type DefenseBar struct {
	Percent int
	Width   int
}

// NewDefenseBar creates a gauge for a 0-100 defense percent.
func NewDefenseBar(percent int) *DefenseBar {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return &DefenseBar{Percent: percent, Width: 30}
}

// WithWidth sets the bar width in cells
func (b *DefenseBar) WithWidth(width int) *DefenseBar {
	b.Width = width
	return b
}

// Render returns the styled bar with its percent caption
func (b *DefenseBar) Render() string {
	filled := b.Percent * b.Width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", b.Width-filled)

	color := tuistyles.ColorDanger
	switch {
	case b.Percent >= 80:
		color = tuistyles.ColorSuccess
	case b.Percent >= 40:
		color = tuistyles.ColorAccent
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %d%%", barStyle.Render(bar), b.Percent)
}
