package refdata

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// Built-in reference tables. Monetary figures are in 10,000-KRW units; risk
// figures are percentages. These are configuration constants, not sourced
// actuarial tables, and can be overridden from the input file.

func defaultProfiles() []domain.DiseaseProfile {
	return []domain.DiseaseProfile{
		{
			Name:            "위암",
			Category:        domain.CategoryCancer,
			PeakAge:         65,
			BaseRiskPercent: decimal.NewFromInt(8),
			AvgCost:         decimal.NewFromInt(6500),
			DirectCost:      decimal.NewFromInt(2000),
			TreatmentMonths: 12,
		},
		{
			Name:            "대장암",
			Category:        domain.CategoryCancer,
			PeakAge:         68,
			BaseRiskPercent: decimal.NewFromInt(10),
			AvgCost:         decimal.NewFromInt(7200),
			DirectCost:      decimal.NewFromInt(2300),
			TreatmentMonths: 12,
		},
		{
			Name:            "폐암",
			Category:        domain.CategoryCancer,
			PeakAge:         70,
			BaseRiskPercent: decimal.NewFromInt(7),
			AvgCost:         decimal.NewFromInt(9500),
			DirectCost:      decimal.NewFromInt(3100),
			TreatmentMonths: 18,
		},
		{
			Name:            "뇌혈관질환",
			Category:        domain.CategoryBrain,
			PeakAge:         58,
			BaseRiskPercent: decimal.NewFromInt(12),
			AvgCost:         decimal.NewFromInt(8500),
			DirectCost:      decimal.NewFromInt(2700),
			TreatmentMonths: 24,
		},
		{
			Name:            "허혈성심질환",
			Category:        domain.CategoryHeart,
			PeakAge:         55,
			BaseRiskPercent: decimal.NewFromInt(9),
			AvgCost:         decimal.NewFromInt(7800),
			DirectCost:      decimal.NewFromInt(2500),
			TreatmentMonths: 18,
		},
		{
			Name:            "치매",
			Category:        domain.CategoryBrain,
			PeakAge:         80,
			BaseRiskPercent: decimal.NewFromInt(15),
			AvgCost:         decimal.NewFromInt(12000),
			DirectCost:      decimal.NewFromInt(3800),
			TreatmentMonths: 60,
		},
	}
}

// riskPercents is the bucketed probability-of-onset table (percent) keyed by
// disease, gender and age bracket. Values are bucketed, not continuous, so
// the projected curve is not monotone in age.
func defaultRiskPercents() map[string]map[domain.Gender]map[string]float64 {
	return map[string]map[domain.Gender]map[string]float64{
		"위암": {
			domain.GenderMale:   {"20s": 0.05, "30s": 0.15, "40s": 0.6, "50s": 1.6, "60s": 3.2, "70s": 4.1, "80s": 3.5},
			domain.GenderFemale: {"20s": 0.04, "30s": 0.12, "40s": 0.4, "50s": 0.9, "60s": 1.7, "70s": 2.3, "80s": 2.0},
		},
		"대장암": {
			domain.GenderMale:   {"20s": 0.04, "30s": 0.14, "40s": 0.7, "50s": 1.8, "60s": 3.6, "70s": 4.8, "80s": 4.2},
			domain.GenderFemale: {"20s": 0.04, "30s": 0.12, "40s": 0.5, "50s": 1.2, "60s": 2.4, "70s": 3.4, "80s": 3.1},
		},
		"폐암": {
			domain.GenderMale:   {"20s": 0.02, "30s": 0.08, "40s": 0.4, "50s": 1.3, "60s": 2.9, "70s": 4.5, "80s": 4.0},
			domain.GenderFemale: {"20s": 0.02, "30s": 0.06, "40s": 0.2, "50s": 0.6, "60s": 1.3, "70s": 2.1, "80s": 1.9},
		},
		"뇌혈관질환": {
			domain.GenderMale:   {"20s": 0.06, "30s": 0.2, "40s": 0.9, "50s": 2.4, "60s": 4.6, "70s": 7.8, "80s": 9.5},
			domain.GenderFemale: {"20s": 0.05, "30s": 0.16, "40s": 0.7, "50s": 1.8, "60s": 3.7, "70s": 6.9, "80s": 9.0},
		},
		"허혈성심질환": {
			domain.GenderMale:   {"20s": 0.05, "30s": 0.25, "40s": 1.1, "50s": 2.6, "60s": 4.2, "70s": 5.9, "80s": 6.3},
			domain.GenderFemale: {"20s": 0.03, "30s": 0.1, "40s": 0.4, "50s": 1.2, "60s": 2.6, "70s": 4.4, "80s": 5.4},
		},
		"치매": {
			domain.GenderMale:   {"20s": 0.01, "30s": 0.02, "40s": 0.1, "50s": 0.4, "60s": 1.5, "70s": 5.6, "80s": 14.2},
			domain.GenderFemale: {"20s": 0.01, "30s": 0.02, "40s": 0.1, "50s": 0.5, "60s": 1.9, "70s": 7.2, "80s": 17.8},
		},
	}
}

// medianIncomes is monthly median income (10,000-KRW) by decade bracket.
// Deliberately sparse at the edges: brackets outside 20s-60s fall back to the
// 50s bracket, and that fallback must be preserved to avoid undefined lookups
// at the distribution's edges.
func defaultMedianIncomes() map[string]float64 {
	return map[string]float64{
		"20s": 280,
		"30s": 350,
		"40s": 400,
		"50s": 380,
		"60s": 250,
	}
}

// defaultWatchList is the fixed disease set behind the combined-risk series
// and the cost-comparison chart triple.
func defaultWatchList() []string {
	return []string{"위암", "대장암", "폐암", "뇌혈관질환", "허혈성심질환", "치매"}
}

// costSeriesDiseases are the three per-category representatives charted
// against payout and investment value.
func costSeriesDiseases() []string {
	return []string{"위암", "뇌혈관질환", "허혈성심질환"}
}
