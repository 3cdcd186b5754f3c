package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

// ProjectionUpperAge is the last age covered by every risk curve.
const ProjectionUpperAge = 85

// RiskProjector computes per-disease probability-of-onset curves from the
// bucketed reference tables.
type RiskProjector struct {
	Data        *refdata.Provider
	Assumptions domain.Assumptions
}

// NewRiskProjector creates a risk projector over the given reference data.
func NewRiskProjector(data *refdata.Provider, assumptions domain.Assumptions) *RiskProjector {
	return &RiskProjector{Data: data, Assumptions: assumptions}
}

// ProjectRisk builds the risk curve for every known disease over every
// integer age from startAge to 85. Diseases in familyHistory are scaled by
// the family-history multiplier; no capping is applied here (capping belongs
// to the classification layer). startAge past 85 yields an empty curve.
func (rp *RiskProjector) ProjectRisk(gender domain.Gender, startAge int, familyHistory []string) (*domain.RiskCurve, error) {
	curve := &domain.RiskCurve{
		Ages:      []int{},
		ByDisease: make(map[string][]decimal.Decimal),
	}

	history := make(map[string]bool, len(familyHistory))
	for _, name := range familyHistory {
		history[name] = true
	}

	diseases := rp.Data.Diseases()
	for age := startAge; age <= ProjectionUpperAge; age++ {
		curve.Ages = append(curve.Ages, age)
		for _, disease := range diseases {
			risk, err := rp.Data.RiskPercent(disease, gender, age)
			if err != nil {
				return nil, err
			}
			if history[disease] {
				risk = risk.Mul(rp.Assumptions.FamilyHistoryMultiplier)
			}
			curve.ByDisease[disease] = append(curve.ByDisease[disease], risk)
		}
	}
	return curve, nil
}

// CombinedRisk reduces the curve to the per-age maximum across the watch
// list. The result drives danger-zone detection and the risk chart shading.
func CombinedRisk(curve *domain.RiskCurve, watchList []string) []decimal.Decimal {
	combined := make([]decimal.Decimal, curve.Len())
	for i := range combined {
		maxRisk := decimal.Zero
		for _, disease := range watchList {
			series, ok := curve.ByDisease[disease]
			if !ok {
				continue
			}
			if series[i].GreaterThan(maxRisk) {
				maxRisk = series[i]
			}
		}
		combined[i] = maxRisk
	}
	return combined
}
