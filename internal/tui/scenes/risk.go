package scenes

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/tui/components"
	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// maxChartSeries limits how many disease lines the chart draws at once.
const maxChartSeries = 4

// RiskModel represents the risk-curve scene
type RiskModel struct {
	result *domain.SimulationResult
	width  int
	height int
}

// NewRiskModel creates a new risk scene model
func NewRiskModel() *RiskModel {
	return &RiskModel{width: 80, height: 24}
}

// SetResult updates the simulation result to display
func (m *RiskModel) SetResult(result *domain.SimulationResult) {
	m.result = result
}

// SetSize updates the scene dimensions
func (m *RiskModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles scene-specific messages
func (m *RiskModel) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// View renders the risk curve with danger shading, the headline cards and
// the alert list
func (m *RiskModel) View() string {
	if m.result == nil {
		return tuistyles.InfoStyle.Render("시뮬레이션 결과가 아직 없습니다.")
	}

	var sections []string
	sections = append(sections, m.renderChart())
	sections = append(sections, m.renderSummary())
	sections = append(sections, m.renderAlerts())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *RiskModel) renderChart() string {
	curve := m.result.Curve
	chart := components.NewRiskChart("질병 위험도 추이").
		WithAges(curve.Ages).
		WithSize(m.width-10, 12)

	colors := []lipgloss.Color{
		tuistyles.ColorChartLine1,
		tuistyles.ColorChartLine2,
		tuistyles.ColorChartLine3,
		tuistyles.ColorChartLine4,
	}

	names := make([]string, 0, len(curve.ByDisease))
	for name := range curve.ByDisease {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxChartSeries {
		names = names[:maxChartSeries]
	}

	for i, name := range names {
		series := curve.ByDisease[name]
		points := make([]float64, len(series))
		for j, v := range series {
			points[j] = v.InexactFloat64()
		}
		chart.AddSeries(name, points, colors[i%len(colors)])
	}

	zones := make([][2]int, 0, len(m.result.DangerZones))
	for _, zone := range m.result.DangerZones {
		zones = append(zones, [2]int{zone.Start, zone.End})
	}
	chart.WithDangerZones(zones)

	return chart.Render()
}

func (m *RiskModel) renderSummary() string {
	summary := m.result.Summary
	if summary.TopDisease == "" {
		return ""
	}

	return components.MetricRow(
		components.NewMetricCard("최고 위험", summary.TopDisease).
			WithDetail(fmt.Sprintf("%d세 피크 %s%%", summary.PeakAge, summary.PeakRiskPercent.StringFixed(1))).
			WithAccent(tuistyles.ColorDanger),
		components.NewMetricCard("예상 비용", tuistyles.FormatMoney(summary.PeakCost)),
		components.NewMetricCard("보장 공백", tuistyles.FormatMoney(summary.CoverageGap)).
			WithDetail("보험 "+tuistyles.FormatMoney(summary.InsuranceCoverage)).
			WithAccent(tuistyles.ColorAccent),
	)
}

func (m *RiskModel) renderAlerts() string {
	if len(m.result.Alerts) == 0 {
		return ""
	}

	var lines []string
	for _, alert := range m.result.Alerts {
		style := tuistyles.InfoStyle
		switch alert.Type {
		case domain.AlertDanger:
			style = tuistyles.ErrorStyle
		case domain.AlertSuccess:
			style = lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
		}
		lines = append(lines, style.Render("• "+alert.Title))
		lines = append(lines, tuistyles.SubtitleStyle.Render("  "+alert.Message))
	}
	return strings.Join(lines, "\n")
}
