package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// CompareInsuranceVsInvestment simulates investing a fixed monthly
// contribution from startAge to targetAge and compares the accumulated value
// against a fixed insurance payout.
//
// The monthly rate is annualRate/12 by simple division; the original product
// used this approximation and it is preserved for output compatibility, not
// corrected to a compounding-equivalent rate. The contribution is applied
// after growth each month (ordinary annuity); changing that order shifts the
// result by one month's growth. targetAge before startAge yields zero months
// and all-zero results, not an error.
func CompareInsuranceVsInvestment(startAge, targetAge int, monthlyContribution, annualRate, payout decimal.Decimal) domain.CostComparison {
	months := (targetAge - startAge) * 12
	if months < 0 {
		months = 0
	}
	monthlyRate := annualRate.Div(decimal.NewFromInt(12))
	growth := decimal.NewFromInt(1).Add(monthlyRate)

	value := decimal.Zero
	for m := 0; m < months; m++ {
		value = value.Mul(growth).Add(monthlyContribution)
	}

	return domain.CostComparison{
		InsuranceValue:   payout,
		InvestmentValue:  value,
		TotalPremiumPaid: monthlyContribution.Mul(decimal.NewFromInt(int64(months))),
	}
}
