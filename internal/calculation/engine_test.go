package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifehedge/lifehedge/internal/classify"
	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

func testInput() domain.SimulationInput {
	return domain.SimulationInput{
		Gender:        domain.GenderMale,
		CurrentAge:    40,
		RetireAge:     65,
		FamilyHistory: []string{"뇌혈관질환"},
		Insurance: domain.InsuranceCoverage{
			Cancer:    decimal.NewFromInt(3000),
			Brain:     decimal.NewFromInt(2000),
			Heart:     decimal.NewFromInt(2000),
			ExpireAge: 65,
		},
		Investment: domain.InvestmentPlan{
			CurrentAsset:        decimal.NewFromInt(1000),
			MonthlyContribution: decimal.NewFromInt(30),
			AnnualReturn:        decimal.NewFromFloat(0.06),
		},
		Preferences: domain.QuizPreferences{LongTerm: true, Stable: true},
	}
}

func newTestEngine() *SimulationEngine {
	return NewSimulationEngine(refdata.NewProvider(), domain.DefaultAssumptions())
}

func TestRunSimulation(t *testing.T) {
	engine := newTestEngine()
	input := testInput()

	result, err := engine.RunSimulation(input)
	require.NoError(t, err)

	assert.Equal(t, 46, result.Curve.Len())
	assert.NotEmpty(t, result.DangerZones, "male risk crosses 2% from the 50s")
	assert.NotEmpty(t, result.Alerts)
	assert.LessOrEqual(t, len(result.Alerts), 4)
	assert.Equal(t, domain.AlertDanger, result.Alerts[0].Type)

	assert.NotEmpty(t, result.Summary.TopDisease)
	assert.True(t, result.Summary.PeakCost.IsPositive())
	assert.True(t, result.Summary.CoverageGap.Equal(
		result.Summary.PeakCost.Sub(result.Summary.InsuranceCoverage)))

	// 40..85 in 5-year steps.
	require.Len(t, result.CostSeries, 10)
	for _, point := range result.CostSeries {
		assert.Len(t, point.DiseaseCosts, 3)
	}
	// First point is at the current age with nothing invested yet.
	assert.Equal(t, 40, result.CostSeries[0].Age)
	assert.True(t, result.CostSeries[0].InvestmentValue.IsZero())
	assert.True(t, result.CostSeries[1].InvestmentValue.IsPositive())
	// Payout degrades to zero past the expiry age.
	last := result.CostSeries[len(result.CostSeries)-1]
	assert.Equal(t, 85, last.Age)
	assert.True(t, last.InsurancePayout.IsZero())
}

func TestRunSimulationNoDangerForYoungFemale(t *testing.T) {
	engine := newTestEngine()
	input := testInput()
	input.Gender = domain.GenderFemale
	input.CurrentAge = 25
	input.FamilyHistory = nil

	result, err := engine.RunSimulation(input)
	require.NoError(t, err)

	// Danger starts later for the female tables; zones must never begin
	// before the first age whose combined risk crosses the threshold.
	if len(result.DangerZones) > 0 {
		firstDangerAge := result.Curve.Ages[result.DangerZones[0].Start]
		assert.GreaterOrEqual(t, firstDangerAge, 60)
	}
}

func TestRunOnsetScenarioShortHorizon(t *testing.T) {
	engine := newTestEngine()
	input := testInput()

	result, err := engine.RunOnsetScenario(input, "위암", 50)
	require.NoError(t, err)

	assert.True(t, result.DiseaseCost.IsPositive())
	assert.True(t, result.Payout.Equal(decimal.NewFromInt(3000)))
	// Ten years to onset: the short-horizon rule fires regardless of the
	// accumulated investment value.
	assert.Equal(t, classify.VerdictInsurance, result.Verdict.Code)
	assert.True(t, result.Pessimistic.InvestmentValue.LessThan(result.Optimistic.InvestmentValue))
	assert.True(t, result.InsuranceCoveragePct.IsPositive())
}

func TestRunOnsetScenarioPastExpiry(t *testing.T) {
	engine := newTestEngine()
	input := testInput()

	result, err := engine.RunOnsetScenario(input, "위암", 70)
	require.NoError(t, err)

	assert.True(t, result.Payout.IsZero(), "coverage expired at 65")
	assert.Equal(t, classify.VerdictInvestmentOnly, result.Verdict.Code)
	assert.True(t, result.InsuranceCoveragePct.IsZero())
}

func TestRunQuizWithFamilyHistory(t *testing.T) {
	engine := newTestEngine()
	input := testInput()
	input.FamilyHistory = []string{"치매"}

	result, err := engine.RunQuiz(input)
	require.NoError(t, err)

	assert.Equal(t, "치매", result.MainDisease)
	// Family history pulls the peak forward from 80 to 75.
	assert.Equal(t, 75, result.PeakAge)
	assert.True(t, result.RiskPercent.Equal(decimal.NewFromFloat(22.5)), result.RiskPercent.String())
	assert.Equal(t, 75, result.DefensePercent, "30/month at scale 2.5")
	assert.Len(t, result.Type.Code, 4)
	assert.True(t, result.ExpectedCost.IsPositive())
}

func TestRunQuizRiskCap(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	assumptions.FamilyHistoryMultiplier = decimal.NewFromInt(3)
	engine := NewSimulationEngine(refdata.NewProvider(), assumptions)

	input := testInput()
	input.FamilyHistory = []string{"치매"}

	result, err := engine.RunQuiz(input)
	require.NoError(t, err)
	assert.True(t, result.RiskPercent.Equal(decimal.NewFromInt(25)),
		"tripled risk clamps to the cap")
}

func TestRunQuizWithoutFamilyHistory(t *testing.T) {
	engine := newTestEngine()
	input := testInput()
	input.FamilyHistory = nil

	result, err := engine.RunQuiz(input)
	require.NoError(t, err)

	// Proximity-weighted base risk at 40 scores 뇌혈관질환 highest:
	// 12 * (1 - 18/100) beats 치매's 15 * (1 - 40/100).
	assert.Equal(t, "뇌혈관질환", result.MainDisease)
	assert.Equal(t, 58, result.PeakAge)
}

func TestBuildAlerts(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	input := testInput()
	curve := &domain.RiskCurve{
		Ages: []int{60, 61, 62, 63},
		ByDisease: map[string][]decimal.Decimal{
			"뇌혈관질환": decimals(2.5, 2.5, 3.0, 3.0),
		},
	}
	zones := []domain.DangerZone{{Start: 0, End: 3}}

	alerts := BuildAlerts(input, curve, zones, assumptions)
	require.NotEmpty(t, alerts)
	assert.Equal(t, domain.AlertDanger, alerts[0].Type)
	// Last danger age 63 is within the expiry of 65: no expiry warning,
	// but the family-history alert for 뇌혈관질환 must appear.
	types := map[string]int{}
	for _, alert := range alerts {
		types[alert.Type]++
	}
	assert.Equal(t, 1, types[domain.AlertWarning])

	// Without zones the all-clear alert is emitted instead.
	clear := BuildAlerts(input, curve, nil, assumptions)
	found := false
	for _, alert := range clear {
		if alert.Type == domain.AlertSuccess {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildAlertsExpiryWarning(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	input := testInput()
	input.FamilyHistory = nil
	curve := &domain.RiskCurve{
		Ages: []int{64, 65, 66, 67},
		ByDisease: map[string][]decimal.Decimal{
			"위암": decimals(2.5, 2.5, 3.0, 3.0),
		},
	}
	zones := []domain.DangerZone{{Start: 0, End: 3}}

	alerts := BuildAlerts(input, curve, zones, assumptions)
	require.GreaterOrEqual(t, len(alerts), 2)
	assert.Equal(t, domain.AlertWarning, alerts[1].Type,
		"danger past the expiry age must raise the uncovered-window warning")
}
