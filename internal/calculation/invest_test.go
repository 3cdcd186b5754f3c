package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompareZeroHorizon(t *testing.T) {
	payout := decimal.NewFromInt(3000)
	for _, targetAge := range []int{40, 35} {
		result := CompareInsuranceVsInvestment(40, targetAge,
			decimal.NewFromInt(30), decimal.NewFromFloat(0.06), payout)

		assert.True(t, result.InvestmentValue.IsZero(), "target %d", targetAge)
		assert.True(t, result.TotalPremiumPaid.IsZero(), "target %d", targetAge)
		assert.True(t, result.InsuranceValue.Equal(payout))
	}
}

func TestCompareOrdinaryAnnuityClosedForm(t *testing.T) {
	// One year at 12% annual is twelve months at exactly 1%. With the
	// contribution applied after growth the balance follows the ordinary
	// annuity future value: 100 * ((1.01^12 - 1) / 0.01).
	result := CompareInsuranceVsInvestment(40, 41, decimal.NewFromInt(100),
		decimal.NewFromFloat(0.12), decimal.Zero)

	expected := 100 * (math.Pow(1.01, 12) - 1) / 0.01
	assert.InDelta(t, expected, result.InvestmentValue.InexactFloat64(), 1e-6)
	assert.True(t, result.TotalPremiumPaid.Equal(decimal.NewFromInt(1200)))

	// An annuity-due (contribution before growth) would land one month of
	// growth higher; the ordinary form must stay strictly below it.
	due := expected * 1.01
	assert.Less(t, result.InvestmentValue.InexactFloat64(), due)
}

func TestCompareRateMonotonicity(t *testing.T) {
	contribution := decimal.NewFromInt(30)
	low := CompareInsuranceVsInvestment(40, 60, contribution,
		decimal.NewFromFloat(0.02), decimal.Zero)
	high := CompareInsuranceVsInvestment(40, 60, contribution,
		decimal.NewFromFloat(0.06), decimal.Zero)

	assert.True(t, high.InvestmentValue.GreaterThan(low.InvestmentValue))
	assert.True(t, low.InvestmentValue.GreaterThan(low.TotalPremiumPaid),
		"any positive rate beats the raw premium sum")
}

func TestCompareZeroRateEqualsPremiumSum(t *testing.T) {
	result := CompareInsuranceVsInvestment(40, 50, decimal.NewFromInt(30),
		decimal.Zero, decimal.Zero)
	assert.True(t, result.InvestmentValue.Equal(result.TotalPremiumPaid))
	assert.True(t, result.TotalPremiumPaid.Equal(decimal.NewFromInt(30*120)))
}
