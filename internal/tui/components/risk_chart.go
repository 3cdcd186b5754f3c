package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// RiskSeries is one disease line in the risk chart
type RiskSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// RiskChart displays the risk-by-age line chart with danger-zone shading
type RiskChart struct {
	Title      string
	Series     []*RiskSeries
	Ages       []int
	DangerCols [][2]int // inclusive index ranges into Ages
	Width      int
	Height     int
	ShowLegend bool
}

// NewRiskChart creates a new risk chart
func NewRiskChart(title string) *RiskChart {
	return &RiskChart{
		Title:      title,
		Series:     []*RiskSeries{},
		Width:      60,
		Height:     12,
		ShowLegend: true,
	}
}

// AddSeries adds a disease line to the chart
func (c *RiskChart) AddSeries(name string, points []float64, color lipgloss.Color) *RiskChart {
	c.Series = append(c.Series, &RiskSeries{Name: name, Points: points, Color: color})
	return c
}

// WithAges sets the X-axis ages
func (c *RiskChart) WithAges(ages []int) *RiskChart {
	c.Ages = ages
	return c
}

// WithDangerZones sets the shaded index ranges
func (c *RiskChart) WithDangerZones(zones [][2]int) *RiskChart {
	c.DangerCols = zones
	return c
}

// WithSize sets the chart dimensions
func (c *RiskChart) WithSize(width, height int) *RiskChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *RiskChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.valueRange()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// valueRange finds the min and max across all series with 10% padding
func (c *RiskChart) valueRange() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if minVal > maxVal {
		return 0, 1
	}
	padding := (maxVal - minVal) * 0.1
	if padding == 0 {
		padding = 0.5
	}
	return math.Max(0, minVal-padding), maxVal + padding
}

// renderGrid renders the chart grid with danger shading under the lines
func (c *RiskChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 8
	chartWidth := c.Width - yAxisWidth
	pointCount := c.pointCount()

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Shade danger columns first so the data lines draw over them.
	for _, zone := range c.DangerCols {
		x0 := c.columnFor(zone[0], pointCount, chartWidth)
		x1 := c.columnFor(zone[1], pointCount, chartWidth)
		for y := range grid {
			for x := x0; x <= x1 && x < chartWidth; x++ {
				grid[y][x] = '░'
			}
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) == 0 {
			continue
		}
		pointChar := seriesChar(seriesIdx)
		prevX, prevY := -1, -1
		for i, point := range series.Points {
			x := c.columnFor(i, len(series.Points), chartWidth)
			y := c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))
			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
			}
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y, pointChar)
			}
			prevX, prevY = x, y
		}
	}

	var output strings.Builder
	span := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*span
		yAxisStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Width(yAxisWidth).
			Align(lipgloss.Right)
		output.WriteString(yAxisStyle.Render(fmt.Sprintf("%.1f%%", yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")
	output.WriteString(c.renderAgeLabels(yAxisWidth, chartWidth))

	return output.String()
}

func (c *RiskChart) pointCount() int {
	count := 0
	for _, series := range c.Series {
		if len(series.Points) > count {
			count = len(series.Points)
		}
	}
	return count
}

// columnFor maps a point index to a grid column
func (c *RiskChart) columnFor(index, pointCount, chartWidth int) int {
	if pointCount <= 1 {
		return 0
	}
	return int(float64(index) / float64(pointCount-1) * float64(chartWidth-1))
}

// renderAgeLabels renders first, middle and last age under the axis
func (c *RiskChart) renderAgeLabels(yAxisWidth, chartWidth int) string {
	if len(c.Ages) == 0 {
		return ""
	}
	first := fmt.Sprintf("%d세", c.Ages[0])
	mid := fmt.Sprintf("%d세", c.Ages[len(c.Ages)/2])
	last := fmt.Sprintf("%d세", c.Ages[len(c.Ages)-1])

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	gap := chartWidth/2 - len(first) - len(mid)/2
	if gap < 1 {
		gap = 1
	}
	gap2 := chartWidth - chartWidth/2 - len(mid)/2 - len(last)
	if gap2 < 1 {
		gap2 = 1
	}

	return strings.Repeat(" ", yAxisWidth+3) +
		labelStyle.Render(first) + strings.Repeat(" ", gap) +
		labelStyle.Render(mid) + strings.Repeat(" ", gap2) +
		labelStyle.Render(last)
}

// renderLegend renders the chart legend
func (c *RiskChart) renderLegend() string {
	var items []string
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}
	legendStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return legendStyle.Render(strings.Join(items, " • ") + " • ░ 위험 구간")
}

// seriesChar returns the character used for a series
func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine draws a line between two points using Bresenham's algorithm
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) {
			if grid[y][x] == ' ' || grid[y][x] == '░' {
				grid[y][x] = char
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// abs returns absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
