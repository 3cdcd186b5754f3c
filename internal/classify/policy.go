// Package classify turns projected coverage figures into a discrete
// recommendation. Two interchangeable policies exist: the tiered verdict of
// the first product generation and the 16-way axis code of the current one.
package classify

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// Input carries the already-validated figures a policy classifies over.
// Policies branch on ordinary conditionals; no errors occur past this point.
type Input struct {
	DiseaseCost      decimal.Decimal
	InsurancePayout  decimal.Decimal
	InvestmentValue  decimal.Decimal
	PessimisticValue decimal.Decimal
	YearsToTarget    int

	FamilyHistory       bool
	MonthlyContribution decimal.Decimal
	LongTermPreference  bool
	StablePreference    bool
}

// Policy is one classification scheme producing a label plus details.
type Policy interface {
	Name() string
	Classify(in Input, assumptions domain.Assumptions) domain.ClassificationResult
}

// ByName returns the policy selected by configuration.
func ByName(name string) (Policy, error) {
	switch name {
	case domain.PolicyTiered, "":
		return TieredPolicy{}, nil
	case domain.PolicyAxes:
		return AxisPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown classification policy %q", name)
}
