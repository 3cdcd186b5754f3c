package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneRisk:
		content = m.riskModel.View()
	case SceneOnset:
		content = m.onsetModel.View()
	case SceneQuiz:
		content = m.quizModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)
	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("LifeHedge - 생애 질병 리스크 시뮬레이터")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("r", "risk"),
		formatShortcut("o", "onset"),
		formatShortcut("z", "quiz"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.config != nil {
		configName := SubtitleStyle.Render("Input loaded")
		width := m.width - lipgloss.Width(statusText) - 4
		spacer := strings.Repeat(" ", max(0, width))
		statusText = statusText + spacer + configName
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), message))
	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)
	return m.renderApp(content)
}

// renderHome renders the home dashboard
func (m Model) renderHome() string {
	if m.config == nil {
		return BorderStyle.Render("입력 파일을 불러오는 중...")
	}

	return BorderStyle.Render(fmt.Sprintf(
		"LifeHedge에 오신 것을 환영합니다!\n\n"+
			"대상: %d세, 가족력 %d건\n\n"+
			"r - 위험 곡선과 위험 구간 보기\n"+
			"o - 조기 발병 시나리오 실행\n"+
			"z - 건강 리스크 유형 진단",
		m.config.Input.CurrentAge, len(m.config.Input.FamilyHistory),
	))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
LifeHedge - 생애 질병 리스크 시뮬레이터

KEYBOARD SHORTCUTS:
  h        Navigate to Home
  r        Navigate to Risk curve
  o        Navigate to Onset scenario
  z        Navigate to Quiz
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

ONSET SCENE:
  Up/Down     Select disease
  Left/Right  Adjust onset age
  Enter       Run the scenario
`

	return BorderStyle.Render(helpText)
}

// Helper function
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
