package output

import (
	json "github.com/goccy/go-json"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// JSONFormatter renders results as indented JSON for machine consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) FormatSimulation(result *domain.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (JSONFormatter) FormatOnset(result *domain.OnsetResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func (JSONFormatter) FormatQuiz(result *domain.QuizResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
