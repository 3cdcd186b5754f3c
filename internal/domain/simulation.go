package domain

import (
	"github.com/shopspring/decimal"
)

// InsuranceCoverage holds the per-category diagnosis payouts and the single
// expiry age shared by all of them.
type InsuranceCoverage struct {
	Cancer    decimal.Decimal `yaml:"cancer" json:"cancer"`
	Brain     decimal.Decimal `yaml:"brain" json:"brain"`
	Heart     decimal.Decimal `yaml:"heart" json:"heart"`
	ExpireAge int             `yaml:"expire_age" json:"expireAge"`
}

// PayoutFor returns the payout for a category at the given age. A disease
// with no category mapping, or an age past expiry, degrades to zero coverage.
func (ic InsuranceCoverage) PayoutFor(category Category, age int) decimal.Decimal {
	if age > ic.ExpireAge {
		return decimal.Zero
	}
	switch category {
	case CategoryCancer:
		return ic.Cancer
	case CategoryBrain:
		return ic.Brain
	case CategoryHeart:
		return ic.Heart
	}
	return decimal.Zero
}

// InvestmentPlan describes the self-directed hedging alternative.
type InvestmentPlan struct {
	CurrentAsset        decimal.Decimal `yaml:"current_asset" json:"currentAsset"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	// AnnualReturn is a fraction, e.g. 0.06 for 6%.
	AnnualReturn decimal.Decimal `yaml:"annual_return" json:"annualReturn"`
}

// QuizPreferences carry the two self-reported axes of the current-generation
// quiz: time orientation and financial preference.
type QuizPreferences struct {
	LongTerm bool `yaml:"long_term" json:"longTerm"`
	Stable   bool `yaml:"stable" json:"stable"`
}

// SimulationInput is the complete, immutable input for one simulation
// request. It is constructed once per request and passed by value into the
// engine; the engine never mutates it and holds no state between requests.
type SimulationInput struct {
	Gender        Gender            `yaml:"gender" json:"gender"`
	CurrentAge    int               `yaml:"current_age" json:"currentAge"`
	RetireAge     int               `yaml:"retire_age" json:"retireAge"`
	FamilyHistory []string          `yaml:"family_history" json:"familyHistory"`
	Insurance     InsuranceCoverage `yaml:"insurance" json:"insurance"`
	Investment    InvestmentPlan    `yaml:"investment" json:"investment"`
	Preferences   QuizPreferences   `yaml:"preferences" json:"preferences"`
}

// HasFamilyHistory reports whether the disease was selected as family history.
func (si SimulationInput) HasFamilyHistory(disease string) bool {
	for _, name := range si.FamilyHistory {
		if name == disease {
			return true
		}
	}
	return false
}
