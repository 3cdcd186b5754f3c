// Package tuistyles holds the shared lipgloss styles so scene and component
// packages can use them without importing the tui package itself.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Palette
var (
	ColorPrimary   = lipgloss.Color("#45b7d1")
	ColorSecondary = lipgloss.Color("#a0a0c0")
	ColorAccent    = lipgloss.Color("#f0ad4e")
	ColorSuccess   = lipgloss.Color("#6bcb77")
	ColorDanger    = lipgloss.Color("#ff6b6b")
	ColorInfo      = lipgloss.Color("#7ec8e3")

	ColorForeground = lipgloss.Color("#e0e0e0")
	ColorMuted      = lipgloss.Color("#808080")
	ColorBorder     = lipgloss.Color("#444466")

	ColorChartLine1 = lipgloss.Color("#45b7d1")
	ColorChartLine2 = lipgloss.Color("#ff6b6b")
	ColorChartLine3 = lipgloss.Color("#6bcb77")
	ColorChartLine4 = lipgloss.Color("#f0ad4e")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	DangerZoneStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)
)

// MetricTrendStyle returns the style for a trend indicator.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger)
}

// TrendIndicator returns the arrow glyph for a trend direction.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatMoney renders a monetary amount in the 10,000-KRW reference unit.
func FormatMoney(amount decimal.Decimal) string {
	return amount.Round(0).String() + "만원"
}
