package tui

import (
	"github.com/lifehedge/lifehedge/internal/config"
	"github.com/lifehedge/lifehedge/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneRisk
	SceneOnset
	SceneQuiz
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals the input file has been loaded
type ConfigLoadedMsg struct {
	Config *config.Config
}

// SimulationStartedMsg signals a simulation run has begun
type SimulationStartedMsg struct{}

// SimulationCompleteMsg signals a simulation run has finished
type SimulationCompleteMsg struct {
	Result *domain.SimulationResult
	Err    error
}

// OnsetCompleteMsg signals an early-onset scenario run has finished
type OnsetCompleteMsg struct {
	Result *domain.OnsetResult
	Err    error
}

// QuizCompleteMsg signals a quiz run has finished
type QuizCompleteMsg struct {
	Result *domain.QuizResult
	Err    error
}

// TickMsg is sent at regular intervals for animations
type TickMsg struct{}
