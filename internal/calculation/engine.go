// Package calculation implements the projection engine: risk curves, cost
// models, the insurance-vs-investment comparison and the derived outputs
// (danger zones, alerts, summary, cost series). The engine is stateless
// between requests; every Run* method takes a complete input and returns a
// fresh result.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/classify"
	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

// costSeriesStep is the age granularity of the cost-comparison series.
const costSeriesStep = 5

// SimulationEngine orchestrates the projectors over one reference-data
// provider and one assumption set. Construct once, share freely; all methods
// are safe for concurrent use.
type SimulationEngine struct {
	Data        *refdata.Provider
	Assumptions domain.Assumptions
	Logger      Logger

	Risk *RiskProjector
	Cost *CostProjector
}

// NewSimulationEngine creates an engine with a no-op logger.
func NewSimulationEngine(data *refdata.Provider, assumptions domain.Assumptions) *SimulationEngine {
	return &SimulationEngine{
		Data:        data,
		Assumptions: assumptions,
		Logger:      &NopLogger{},
		Risk:        NewRiskProjector(data, assumptions),
		Cost:        NewCostProjector(data, assumptions),
	}
}

// SetLogger replaces the engine logger. Call before the first Run.
func (se *SimulationEngine) SetLogger(logger Logger) {
	if logger != nil {
		se.Logger = logger
	}
}

// RunSimulation produces the full dashboard result: the per-disease risk
// curve, danger zones over the combined watch-list risk, alerts, headline
// summary and the 5-year cost-comparison series.
func (se *SimulationEngine) RunSimulation(input domain.SimulationInput) (*domain.SimulationResult, error) {
	se.Logger.Debugf("simulation start: gender=%s age=%d history=%d",
		input.Gender, input.CurrentAge, len(input.FamilyHistory))

	curve, err := se.Risk.ProjectRisk(input.Gender, input.CurrentAge, input.FamilyHistory)
	if err != nil {
		return nil, err
	}

	combined := CombinedRisk(curve, se.Data.WatchList())
	zones := DetectDangerZones(combined, se.Assumptions.DangerThresholdPercent)
	se.Logger.Debugf("detected %d danger zones over %d ages", len(zones), curve.Len())

	summary, err := se.Summarize(input, curve)
	if err != nil {
		return nil, err
	}

	series, err := se.buildCostSeries(input)
	if err != nil {
		return nil, err
	}

	return &domain.SimulationResult{
		Input:       input,
		Curve:       curve,
		DangerZones: zones,
		Alerts:      BuildAlerts(input, curve, zones, se.Assumptions),
		Summary:     summary,
		CostSeries:  series,
	}, nil
}

// buildCostSeries projects, at 5-year steps from the current age to the
// projection horizon, the onset cost of each charted disease against the best
// available payout and the value of investing the reference premium instead.
func (se *SimulationEngine) buildCostSeries(input domain.SimulationInput) ([]domain.CostSeriesPoint, error) {
	series := []domain.CostSeriesPoint{}
	for age := input.CurrentAge; age <= ProjectionUpperAge; age += costSeriesStep {
		point := domain.CostSeriesPoint{
			Age:          age,
			DiseaseCosts: make(map[string]decimal.Decimal),
		}
		for _, disease := range se.Data.CostSeriesDiseases() {
			cost, err := se.Cost.ProjectCost(disease, age, input.CurrentAge)
			if err != nil {
				return nil, err
			}
			point.DiseaseCosts[disease] = cost
		}
		point.InsurancePayout = bestPayoutAt(input.Insurance, age)
		point.InvestmentValue = CompareInsuranceVsInvestment(
			input.CurrentAge, age,
			se.Assumptions.ReferenceMonthlyPremium,
			input.Investment.AnnualReturn,
			decimal.Zero,
		).InvestmentValue
		series = append(series, point)
	}
	return series, nil
}

// bestPayoutAt is the largest category payout still valid at the given age;
// zero once every category has expired.
func bestPayoutAt(coverage domain.InsuranceCoverage, age int) decimal.Decimal {
	best := decimal.Zero
	for _, category := range []domain.Category{domain.CategoryCancer, domain.CategoryBrain, domain.CategoryHeart} {
		if payout := coverage.PayoutFor(category, age); payout.GreaterThan(best) {
			best = payout
		}
	}
	return best
}

// RunOnsetScenario answers "what if this disease strikes at this age":
// projected cost, the payout still valid at that age, an optimistic and a
// pessimistic accumulation run for the planned contribution, and the ordered
// threshold verdict between the two hedges.
func (se *SimulationEngine) RunOnsetScenario(input domain.SimulationInput, disease string, onsetAge int) (*domain.OnsetResult, error) {
	cost, err := se.Cost.ProjectCost(disease, onsetAge, input.CurrentAge)
	if err != nil {
		return nil, err
	}

	payout := decimal.Zero
	if category, ok := se.Data.CategoryOf(disease); ok {
		payout = input.Insurance.PayoutFor(category, onsetAge)
	}

	optimistic := CompareInsuranceVsInvestment(
		input.CurrentAge, onsetAge,
		input.Investment.MonthlyContribution,
		input.Investment.AnnualReturn,
		payout,
	)
	pessimistic := CompareInsuranceVsInvestment(
		input.CurrentAge, onsetAge,
		input.Investment.MonthlyContribution,
		se.Assumptions.PessimisticAnnualRate,
		payout,
	)

	verdict := classify.TieredPolicy{}.Classify(classify.Input{
		DiseaseCost:         cost,
		InsurancePayout:     payout,
		InvestmentValue:     optimistic.InvestmentValue,
		PessimisticValue:    pessimistic.InvestmentValue,
		YearsToTarget:       onsetAge - input.CurrentAge,
		FamilyHistory:       len(input.FamilyHistory) > 0,
		MonthlyContribution: input.Investment.MonthlyContribution,
		LongTermPreference:  input.Preferences.LongTerm,
		StablePreference:    input.Preferences.Stable,
	}, se.Assumptions)

	se.Logger.Debugf("onset scenario %s@%d: cost=%s payout=%s verdict=%s",
		disease, onsetAge, cost.StringFixed(0), payout.StringFixed(0), verdict.Code)

	return &domain.OnsetResult{
		Disease:                disease,
		OnsetAge:               onsetAge,
		DiseaseCost:            cost,
		Payout:                 payout,
		Optimistic:             optimistic,
		Pessimistic:            pessimistic,
		InsuranceCoveragePct:   roundedCoveragePct(payout, cost),
		InvestmentCoveragePct:  roundedCoveragePct(optimistic.InvestmentValue, cost),
		PessimisticCoveragePct: roundedCoveragePct(pessimistic.InvestmentValue, cost),
		Verdict:                verdict,
	}, nil
}

// RunQuiz computes the lightweight quiz outcome: the main disease to prepare
// for, its family-history-adjusted peak, the inflated expected cost at that
// peak, the defense score and the configured classification.
func (se *SimulationEngine) RunQuiz(input domain.SimulationInput) (*domain.QuizResult, error) {
	mainDisease, err := se.quizMainDisease(input)
	if err != nil {
		return nil, err
	}
	profile, err := se.Data.Profile(mainDisease)
	if err != nil {
		return nil, err
	}

	peakAge := profile.PeakAge
	risk := profile.BaseRiskPercent
	if input.HasFamilyHistory(mainDisease) {
		// Family history both raises the risk and pulls the expected peak
		// forward five years.
		peakAge -= costSeriesStep
		risk = risk.Mul(se.Assumptions.FamilyHistoryMultiplier)
		if risk.GreaterThan(se.Assumptions.FamilyHistoryRiskCapPercent) {
			risk = se.Assumptions.FamilyHistoryRiskCapPercent
		}
	}

	years := peakAge - input.CurrentAge
	if years < 0 {
		years = 0
	}
	expectedCost := profile.AvgCost.
		Mul(inflationFactor(se.Assumptions.LumpInflationRate, years)).
		Round(0)

	policy, err := classify.ByName(se.Assumptions.Policy)
	if err != nil {
		return nil, err
	}
	classification := policy.Classify(classify.Input{
		DiseaseCost:         expectedCost,
		YearsToTarget:       years,
		FamilyHistory:       len(input.FamilyHistory) > 0,
		MonthlyContribution: input.Investment.MonthlyContribution,
		LongTermPreference:  input.Preferences.LongTerm,
		StablePreference:    input.Preferences.Stable,
	}, se.Assumptions)

	return &domain.QuizResult{
		MainDisease:    mainDisease,
		PeakAge:        peakAge,
		RiskPercent:    risk,
		ExpectedCost:   expectedCost,
		DefensePercent: classification.DefensePercent,
		Type:           classification,
	}, nil
}

// quizMainDisease picks the disease the quiz centers on: the first
// family-history entry when one exists, otherwise the disease whose base risk
// weighted by peak-age proximity scores highest for the current age.
func (se *SimulationEngine) quizMainDisease(input domain.SimulationInput) (string, error) {
	if len(input.FamilyHistory) > 0 {
		return input.FamilyHistory[0], nil
	}

	best := ""
	bestScore := decimal.NewFromInt(-1)
	for _, disease := range se.Data.Diseases() {
		profile, err := se.Data.Profile(disease)
		if err != nil {
			return "", err
		}
		distance := profile.PeakAge - input.CurrentAge
		if distance < 0 {
			distance = -distance
		}
		proximity := decimal.NewFromInt(1).
			Sub(decimal.NewFromInt(int64(distance)).Div(decimal.NewFromInt(100)))
		score := profile.BaseRiskPercent.Mul(proximity)
		if score.GreaterThan(bestScore) {
			bestScore = score
			best = disease
		}
	}
	return best, nil
}

func roundedCoveragePct(value, cost decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return value.Div(cost).Mul(decimal.NewFromInt(100)).Round(0)
}
