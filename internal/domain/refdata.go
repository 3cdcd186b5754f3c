package domain

import (
	"github.com/shopspring/decimal"
)

// Gender identifies the reference-table axis used for risk lookups
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether the gender is one of the known table axes
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Category groups diseases for insurance-product mapping
type Category string

const (
	CategoryCancer Category = "cancer"
	CategoryBrain  Category = "brain"
	CategoryHeart  Category = "heart"
)

// DiseaseProfile holds the static per-disease reference parameters.
// AvgCost drives the legacy lump cost model; DirectCost and TreatmentMonths
// drive the split model. All monetary fields are in the configured currency
// unit (reference data ships in 10,000-KRW units).
type DiseaseProfile struct {
	Name            string          `yaml:"name" json:"name"`
	Category        Category        `yaml:"category" json:"category"`
	PeakAge         int             `yaml:"peak_age" json:"peakAge"`
	BaseRiskPercent decimal.Decimal `yaml:"base_risk_percent" json:"baseRiskPercent"`
	AvgCost         decimal.Decimal `yaml:"avg_cost" json:"avgCost"`
	DirectCost      decimal.Decimal `yaml:"direct_cost" json:"directCost"`
	TreatmentMonths int             `yaml:"treatment_months" json:"treatmentMonths"`
}

// Cost model selection for the cost projector
const (
	CostModelLump  = "lump"
	CostModelSplit = "split"
)

// Classification policy selection
const (
	PolicyTiered = "tiered"
	PolicyAxes   = "axes"
)

// Assumptions are the named numeric knobs consumed by the engine. They are
// simple constants, not behavioral switches, except CostModel and Policy which
// select between the two product generations.
type Assumptions struct {
	// Lump model: 5% annual medical inflation, 2x non-covered correction,
	// one year of income loss added to the treatment cost.
	LumpInflationRate        decimal.Decimal `yaml:"lump_inflation_rate" json:"lumpInflationRate"`
	NonCoveredCostMultiplier decimal.Decimal `yaml:"non_covered_cost_multiplier" json:"nonCoveredCostMultiplier"`
	AnnualIncomeLoss         decimal.Decimal `yaml:"annual_income_loss" json:"annualIncomeLoss"`

	// Split model: 3% annual medical inflation plus bracketed income loss.
	SplitInflationRate decimal.Decimal `yaml:"split_inflation_rate" json:"splitInflationRate"`

	FamilyHistoryMultiplier     decimal.Decimal `yaml:"family_history_multiplier" json:"familyHistoryMultiplier"`
	FamilyHistoryRiskCapPercent decimal.Decimal `yaml:"family_history_risk_cap_percent" json:"familyHistoryRiskCapPercent"`
	DangerThresholdPercent      decimal.Decimal `yaml:"danger_threshold_percent" json:"dangerThresholdPercent"`
	DefenseScaleFactor          decimal.Decimal `yaml:"defense_scale_factor" json:"defenseScaleFactor"`

	// Verdict scenario knobs: the reference premium invested instead of
	// insured, and the pessimistic return used for the downside comparison.
	ReferenceMonthlyPremium decimal.Decimal `yaml:"reference_monthly_premium" json:"referenceMonthlyPremium"`
	PessimisticAnnualRate   decimal.Decimal `yaml:"pessimistic_annual_rate" json:"pessimisticAnnualRate"`

	CostModel string `yaml:"cost_model" json:"costModel"`
	Policy    string `yaml:"policy" json:"policy"`
}

// DefaultAssumptions returns the reference configuration. Values match the
// shipped product constants; they are overridable from the input file.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		LumpInflationRate:           decimal.NewFromFloat(0.05),
		NonCoveredCostMultiplier:    decimal.NewFromFloat(2.0),
		AnnualIncomeLoss:            decimal.NewFromInt(5000),
		SplitInflationRate:          decimal.NewFromFloat(0.03),
		FamilyHistoryMultiplier:     decimal.NewFromFloat(1.5),
		FamilyHistoryRiskCapPercent: decimal.NewFromInt(25),
		DangerThresholdPercent:      decimal.NewFromFloat(2.0),
		DefenseScaleFactor:          decimal.NewFromFloat(2.5),
		ReferenceMonthlyPremium:     decimal.NewFromInt(20),
		PessimisticAnnualRate:       decimal.NewFromFloat(0.02),
		CostModel:                   CostModelSplit,
		Policy:                      PolicyAxes,
	}
}
