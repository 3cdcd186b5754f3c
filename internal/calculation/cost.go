package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

// CostProjector estimates the money needed if a disease occurs at a given
// age, inflated forward from a reference age. Two product generations exist;
// the configured cost model selects between them.
type CostProjector struct {
	Data        *refdata.Provider
	Assumptions domain.Assumptions
}

// NewCostProjector creates a cost projector over the given reference data.
func NewCostProjector(data *refdata.Provider, assumptions domain.Assumptions) *CostProjector {
	return &CostProjector{Data: data, Assumptions: assumptions}
}

// ProjectCost dispatches to the configured cost model.
func (cp *CostProjector) ProjectCost(disease string, onsetAge, referenceAge int) (decimal.Decimal, error) {
	switch cp.Assumptions.CostModel {
	case domain.CostModelLump, "":
		return cp.LumpCost(disease, onsetAge, referenceAge)
	case domain.CostModelSplit:
		return cp.SplitCost(disease, onsetAge, referenceAge)
	}
	return decimal.Zero, fmt.Errorf("unknown cost model %q", cp.Assumptions.CostModel)
}

// LumpCost is the legacy single-figure model: the average treatment cost,
// doubled for non-covered items, plus one year of income loss, compounded at
// the 5% medical inflation rate. Onset before the reference age clamps the
// elapsed years to zero rather than erroring; compounding only runs forward.
func (cp *CostProjector) LumpCost(disease string, onsetAge, referenceAge int) (decimal.Decimal, error) {
	profile, err := cp.Data.Profile(disease)
	if err != nil {
		return decimal.Zero, err
	}
	base := profile.AvgCost.Mul(cp.Assumptions.NonCoveredCostMultiplier).
		Add(cp.Assumptions.AnnualIncomeLoss)
	return base.Mul(inflationFactor(cp.Assumptions.LumpInflationRate, clampYears(onsetAge, referenceAge))), nil
}

// SplitCost is the current-generation model: the direct treatment cost
// compounded at 3% medical inflation, plus an indirect income-loss figure of
// the bracketed median monthly income at the treatment midpoint times the
// treatment length. Negative elapsed years clamp to zero, same as LumpCost.
func (cp *CostProjector) SplitCost(disease string, onsetAge, referenceAge int) (decimal.Decimal, error) {
	profile, err := cp.Data.Profile(disease)
	if err != nil {
		return decimal.Zero, err
	}

	years := clampYears(onsetAge, referenceAge)
	direct := profile.DirectCost.Mul(inflationFactor(cp.Assumptions.SplitInflationRate, years)).Round(0)

	// Income loss is valued at the midpoint of the treatment window.
	midpointAge := onsetAge + profile.TreatmentMonths/24
	income, err := cp.Data.MedianIncome(midpointAge)
	if err != nil {
		return decimal.Zero, err
	}
	indirect := income.Mul(decimal.NewFromInt(int64(profile.TreatmentMonths)))

	return direct.Add(indirect), nil
}

func clampYears(onsetAge, referenceAge int) int {
	if onsetAge < referenceAge {
		return 0
	}
	return onsetAge - referenceAge
}

func inflationFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
}
