package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// MetricCard displays a single headline figure with its label
type MetricCard struct {
	Label  string
	Value  string
	Detail string
	Accent lipgloss.Color
	Width  int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label:  label,
		Value:  value,
		Accent: tuistyles.ColorBorder,
		Width:  24,
	}
}

// WithDetail adds a subtitle line under the value
func (m *MetricCard) WithDetail(detail string) *MetricCard {
	m.Detail = detail
	return m
}

// WithAccent colors the card border
func (m *MetricCard) WithAccent(color lipgloss.Color) *MetricCard {
	m.Accent = color
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(m.Value)
	if m.Detail != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Detail)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Accent).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(content)
}

// MetricRow renders metric cards side by side
func MetricRow(cards ...*MetricCard) string {
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, card.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
