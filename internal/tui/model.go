package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifehedge/lifehedge/internal/calculation"
	"github.com/lifehedge/lifehedge/internal/config"
	"github.com/lifehedge/lifehedge/internal/tui/scenes"
	"github.com/lifehedge/lifehedge/internal/tui/tuistyles"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and engine
	configPath string
	config     *config.Config
	engine     *calculation.SimulationEngine

	// Scene models
	riskModel  *scenes.RiskModel
	onsetModel *scenes.OnsetModel
	quizModel  *scenes.QuizModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
	spinner        spinner.Model
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)

	return Model{
		currentScene: SceneHome,
		configPath:   configPath,
		riskModel:    scenes.NewRiskModel(),
		onsetModel:   scenes.NewOnsetModel(),
		quizModel:    scenes.NewQuizModel(),
		width:        80,
		height:       24,
		loading:      true,
		spinner:      sp,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadConfigCmd(m.configPath), m.spinner.Tick)
}

// loadConfigCmd returns a command that loads the input file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// runSimulationCmd returns a command that runs the full simulation
func runSimulationCmd(engine *calculation.SimulationEngine, cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.RunSimulation(cfg.Input)
		return SimulationCompleteMsg{Result: result, Err: err}
	}
}

// runOnsetCmd returns a command that runs one early-onset scenario
func runOnsetCmd(engine *calculation.SimulationEngine, cfg *config.Config, disease string, onsetAge int) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.RunOnsetScenario(cfg.Input, disease, onsetAge)
		return OnsetCompleteMsg{Result: result, Err: err}
	}
}

// runQuizCmd returns a command that runs the quiz classification
func runQuizCmd(engine *calculation.SimulationEngine, cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.RunQuiz(cfg.Input)
		return QuizCompleteMsg{Result: result, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneRisk:
		return "Risk"
	case SceneOnset:
		return "Onset"
	case SceneQuiz:
		return "Quiz"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
