package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifehedge/lifehedge/internal/calculation"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.riskModel.SetSize(msg.Width, msg.Height)
		m.onsetModel.SetSize(msg.Width, msg.Height)
		m.quizModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.loading = true
		m.loadingMessage = "시뮬레이션 계산 중..."
		m.engine = calculation.NewSimulationEngine(msg.Config.Provider(), msg.Config.Assumptions)
		m.onsetModel.SetChoices(m.engine.Data.Diseases(), msg.Config.Input.CurrentAge)
		// Kick off the initial simulation right away so the risk scene has
		// data the first time it is shown.
		return m, runSimulationCmd(m.engine, m.config)

	case SimulationStartedMsg:
		m.loading = true
		m.loadingMessage = "시뮬레이션 계산 중..."
		return m, nil

	case SimulationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.riskModel.SetResult(msg.Result)
		}
		return m, nil

	case OnsetCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.onsetModel.SetResult(msg.Result)
		}
		return m, nil

	case QuizCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.quizModel.SetResult(msg.Result)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
		return m, nil

	case TickMsg:
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key clears a displayed error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m, navigateTo(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene {
				return m, navigateTo(m.previousScene)
			}
			return m, navigateTo(SceneHome)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigateTo(SceneHome)
		}

	case "r":
		if m.currentScene != SceneRisk {
			return m, navigateTo(SceneRisk)
		}

	case "o":
		if m.currentScene != SceneOnset {
			return m, navigateTo(SceneOnset)
		}

	case "z":
		if m.currentScene != SceneQuiz {
			cmds := []tea.Cmd{navigateTo(SceneQuiz)}
			if m.engine != nil && m.quizModel.Empty() {
				cmds = append(cmds, runQuizCmd(m.engine, m.config))
			}
			return m, tea.Batch(cmds...)
		}

	case "enter":
		// The onset scene triggers a run with the selected disease and age.
		if m.currentScene == SceneOnset && m.engine != nil {
			disease, age, ok := m.onsetModel.Selection()
			if ok {
				return m, runOnsetCmd(m.engine, m.config, disease, age)
			}
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneRisk:
		cmd := m.riskModel.Update(msg)
		return m, cmd
	case SceneOnset:
		cmd := m.onsetModel.Update(msg)
		return m, cmd
	case SceneQuiz:
		cmd := m.quizModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func navigateTo(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}
