package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/tui/components"
	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// Onset age bounds for the selector
const (
	minOnsetAge = 20
	maxOnsetAge = 85
)

// OnsetModel represents the early-onset scenario scene: a disease/age
// selector plus the latest run result
type OnsetModel struct {
	diseases []string
	cursor   int
	onsetAge int
	result   *domain.OnsetResult
	width    int
	height   int
}

// NewOnsetModel creates a new onset scene model
func NewOnsetModel() *OnsetModel {
	return &OnsetModel{onsetAge: 50, width: 80, height: 24}
}

// SetChoices installs the selectable diseases and seeds the onset age ten
// years past the current age
func (m *OnsetModel) SetChoices(diseases []string, currentAge int) {
	m.diseases = diseases
	m.cursor = 0
	m.onsetAge = clampAge(currentAge + 10)
}

// SetResult updates the scenario result to display
func (m *OnsetModel) SetResult(result *domain.OnsetResult) {
	m.result = result
}

// SetSize updates the scene dimensions
func (m *OnsetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selection returns the currently selected disease and onset age
func (m *OnsetModel) Selection() (string, int, bool) {
	if len(m.diseases) == 0 {
		return "", 0, false
	}
	return m.diseases[m.cursor], m.onsetAge, true
}

// Update handles the selector keys
func (m *OnsetModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.diseases)-1 {
			m.cursor++
		}
	case "left":
		m.onsetAge = clampAge(m.onsetAge - 1)
	case "right":
		m.onsetAge = clampAge(m.onsetAge + 1)
	}
	return nil
}

// View renders the selector and, once available, the scenario result
func (m *OnsetModel) View() string {
	var sections []string
	sections = append(sections, m.renderSelector())
	if m.result != nil {
		sections = append(sections, m.renderResult())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *OnsetModel) renderSelector() string {
	var lines []string
	lines = append(lines, tuistyles.TitleStyle.Render("조기 발병 시나리오"))
	lines = append(lines, tuistyles.SubtitleStyle.Render(
		fmt.Sprintf("발병 나이: %d세 (←/→ 조절, Enter 실행)", m.onsetAge)))
	lines = append(lines, "")

	for i, disease := range m.diseases {
		if i == m.cursor {
			lines = append(lines, tuistyles.SelectedItemStyle.Render("> "+disease))
		} else {
			lines = append(lines, tuistyles.UnselectedItemStyle.Render("  "+disease))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *OnsetModel) renderResult() string {
	result := m.result

	cards := components.MetricRow(
		components.NewMetricCard("예상 비용", tuistyles.FormatMoney(result.DiseaseCost)).
			WithAccent(tuistyles.ColorDanger),
		components.NewMetricCard("보험금", tuistyles.FormatMoney(result.Payout)).
			WithDetail(result.InsuranceCoveragePct.StringFixed(0)+"% 커버"),
		components.NewMetricCard("투자 평가액", tuistyles.FormatMoney(result.Optimistic.InvestmentValue)).
			WithDetail(result.InvestmentCoveragePct.StringFixed(0)+"% 커버"),
		components.NewMetricCard("비관 시나리오", tuistyles.FormatMoney(result.Pessimistic.InvestmentValue)).
			WithDetail(result.PessimisticCoveragePct.StringFixed(0)+"% 커버"),
	)

	verdictStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(result.Verdict.AccentColor))
	verdict := verdictStyle.Render("판정: "+result.Verdict.Label) + "\n" +
		tuistyles.SubtitleStyle.Render(result.Verdict.Tip)

	return lipgloss.JoinVertical(lipgloss.Left, "", cards, "", verdict)
}

func clampAge(age int) int {
	if age < minOnsetAge {
		return minOnsetAge
	}
	if age > maxOnsetAge {
		return maxOnsetAge
	}
	return age
}
