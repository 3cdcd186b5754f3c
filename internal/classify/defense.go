package classify

import (
	"github.com/shopspring/decimal"
)

// DefensePercent is the saturating linear score behind the strength bars:
// min(round(contribution × scale), 100). With the reference scale of 2.5 a
// 40-unit monthly contribution reaches 100%.
func DefensePercent(monthlyContribution, scale decimal.Decimal) int {
	score := monthlyContribution.Mul(scale).Round(0).IntPart()
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return int(score)
}
