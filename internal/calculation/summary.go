package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// Summarize extracts the headline figures: the highest-risk disease over the
// projected horizon, its peak age and risk, the projected cost at that peak,
// the matching category payout (zero past expiry or without a category
// mapping) and the resulting coverage gap.
func (se *SimulationEngine) Summarize(input domain.SimulationInput, curve *domain.RiskCurve) (domain.SummaryStats, error) {
	stats := domain.SummaryStats{}
	if curve.Len() == 0 {
		return stats, nil
	}

	maxRisk := decimal.Zero
	for _, disease := range se.Data.Diseases() {
		peakAge, peakRisk, ok := curve.PeakFor(disease)
		if !ok {
			continue
		}
		if peakRisk.GreaterThan(maxRisk) {
			maxRisk = peakRisk
			stats.TopDisease = disease
			stats.PeakAge = peakAge
			stats.PeakRiskPercent = peakRisk
		}
	}
	if stats.TopDisease == "" {
		return stats, nil
	}

	cost, err := se.Cost.ProjectCost(stats.TopDisease, stats.PeakAge, input.CurrentAge)
	if err != nil {
		return stats, err
	}
	stats.PeakCost = cost

	if category, ok := se.Data.CategoryOf(stats.TopDisease); ok {
		stats.InsuranceCoverage = input.Insurance.PayoutFor(category, stats.PeakAge)
	} else {
		stats.InsuranceCoverage = decimal.Zero
	}
	stats.CoverageGap = stats.PeakCost.Sub(stats.InsuranceCoverage)
	return stats, nil
}
