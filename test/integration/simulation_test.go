package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifehedge/lifehedge/internal/calculation"
	"github.com/lifehedge/lifehedge/internal/config"
	"github.com/lifehedge/lifehedge/internal/output"
)

const exampleInput = `
input:
  gender: male
  current_age: 40
  retire_age: 65
  family_history: ["뇌혈관질환"]
  insurance:
    cancer: 3000
    brain: 2000
    heart: 2000
    expire_age: 65
  investment:
    current_asset: 1000
    monthly_contribution: 30
    annual_return: 0.06
  preferences:
    long_term: true
    stable: true
assumptions:
  cost_model: split
  policy: axes
`

func writeExampleInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleInput), 0o644))
	return path
}

// TestSimulationPipeline runs the whole chain: input file, engine, formatter.
func TestSimulationPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(writeExampleInput(t))
	require.NoError(t, err)

	engine := calculation.NewSimulationEngine(cfg.Provider(), cfg.Assumptions)

	result, err := engine.RunSimulation(cfg.Input)
	require.NoError(t, err)
	assert.Equal(t, 46, result.Curve.Len())
	assert.NotEmpty(t, result.DangerZones)
	assert.NotEmpty(t, result.Alerts)
	assert.NotEmpty(t, result.Summary.TopDisease)

	for _, name := range output.FormatterNames() {
		formatter := output.GetFormatterByName(name)
		require.NotNil(t, formatter, name)
		data, err := formatter.FormatSimulation(result)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestOnsetPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(writeExampleInput(t))
	require.NoError(t, err)

	engine := calculation.NewSimulationEngine(cfg.Provider(), cfg.Assumptions)

	result, err := engine.RunOnsetScenario(cfg.Input, "뇌혈관질환", 58)
	require.NoError(t, err)
	assert.True(t, result.DiseaseCost.IsPositive())
	assert.NotEmpty(t, result.Verdict.Code)

	data, err := output.GetFormatterByName("console").FormatOnset(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "뇌혈관질환")
}

func TestQuizPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(writeExampleInput(t))
	require.NoError(t, err)

	engine := calculation.NewSimulationEngine(cfg.Provider(), cfg.Assumptions)

	result, err := engine.RunQuiz(cfg.Input)
	require.NoError(t, err)
	// 뇌혈관질환 is the family-history pick; axes policy yields a 4-letter code.
	assert.Equal(t, "뇌혈관질환", result.MainDisease)
	assert.Len(t, result.Type.Code, 4)

	data, err := output.GetFormatterByName("json").FormatQuiz(result)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
