package scenes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/tui/components"
	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// QuizModel represents the quiz-result scene
type QuizModel struct {
	result *domain.QuizResult
	width  int
	height int
}

// NewQuizModel creates a new quiz scene model
func NewQuizModel() *QuizModel {
	return &QuizModel{width: 80, height: 24}
}

// SetResult updates the quiz result to display
func (m *QuizModel) SetResult(result *domain.QuizResult) {
	m.result = result
}

// Empty reports whether no quiz has been run yet
func (m *QuizModel) Empty() bool {
	return m.result == nil
}

// SetSize updates the scene dimensions
func (m *QuizModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles scene-specific messages
func (m *QuizModel) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// View renders the type card, the headline figures and the defense gauge
func (m *QuizModel) View() string {
	if m.result == nil {
		return tuistyles.InfoStyle.Render("진단을 계산하는 중...")
	}
	result := m.result

	typeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(result.Type.AccentColor))
	header := typeStyle.Render(fmt.Sprintf("%s (%s)", result.Type.Label, result.Type.Code)) + "\n" +
		tuistyles.SubtitleStyle.Render(result.Type.Tip)

	cards := components.MetricRow(
		components.NewMetricCard("주의 질병", result.MainDisease).
			WithDetail(fmt.Sprintf("%d세 피크 %s%%", result.PeakAge, result.RiskPercent.StringFixed(1))).
			WithAccent(tuistyles.ColorDanger),
		components.NewMetricCard("예상 비용", tuistyles.FormatMoney(result.ExpectedCost)),
	)

	gauge := tuistyles.MetricLabelStyle.Render("방어력") + "\n" +
		components.NewDefenseBar(result.DefensePercent).WithWidth(40).Render()

	return lipgloss.JoinVertical(lipgloss.Left, header, "", cards, "", gauge)
}
