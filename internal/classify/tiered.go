package classify

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// Verdict codes produced by the tiered policy
const (
	VerdictInsurance      = "insurance"
	VerdictInvestment     = "investment"
	VerdictInvestmentOnly = "investment_only"
	VerdictBalanced       = "balanced"
)

// shortHorizonYears is the horizon below which compounding has not had time
// to work, making the guaranteed payout the better hedge.
const shortHorizonYears = 10

// advantageFactor is the margin one side must clear over the other before
// the verdict leaves the balanced band.
var advantageFactor = decimal.NewFromFloat(1.2)

// TieredPolicy is the first-generation verdict: ordered threshold rules over
// the projected coverage figures. Rules are evaluated in fixed order and the
// first match wins.
type TieredPolicy struct{}

func (TieredPolicy) Name() string { return domain.PolicyTiered }

// Classify applies the rule ladder:
//  1. short horizon -> insurance favored
//  2. zero payout (post-expiry) -> investment only (a tie class, nothing to compare)
//  3. investment ahead by >20% -> investment favored
//  4. payout ahead by >20% -> insurance favored
//  5. otherwise balanced
func (p TieredPolicy) Classify(in Input, assumptions domain.Assumptions) domain.ClassificationResult {
	defense := DefensePercent(in.MonthlyContribution, assumptions.DefenseScaleFactor)

	investmentPct := coveragePercent(in.InvestmentValue, in.DiseaseCost)
	pessimisticPct := coveragePercent(in.PessimisticValue, in.DiseaseCost)

	var code, label, tip, accent string
	switch {
	case in.YearsToTarget <= shortHorizonYears:
		code = VerdictInsurance
		label = "보험 우위 (조기 발병)"
		tip = fmt.Sprintf("투자 누적 기간이 짧아 %s%%만 커버됩니다. 확정 보장이 유리합니다.", investmentPct.StringFixed(0))
		accent = "#45b7d1"
	case in.InsurancePayout.IsZero():
		code = VerdictInvestmentOnly
		label = "보험 만기 이후"
		tip = "보험 만기 이후입니다. 투자 자산으로만 대비해야 합니다."
		accent = "#f0ad4e"
	case in.InvestmentValue.GreaterThan(in.InsurancePayout.Mul(advantageFactor)):
		code = VerdictInvestment
		label = "투자 우위"
		margin := in.InvestmentValue.Div(in.InsurancePayout).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
		tip = fmt.Sprintf("장기 투자로 %s%% 더 많은 자금을 마련할 수 있습니다. 단, 시장 리스크가 있습니다.", margin.StringFixed(0))
		accent = "#6bcb77"
	case in.InsurancePayout.GreaterThan(in.InvestmentValue.Mul(advantageFactor)):
		code = VerdictInsurance
		label = "보험 우위"
		tip = fmt.Sprintf("확정 보장으로 안정적입니다. 비관적 시나리오에서는 투자가 %s%%만 커버합니다.", pessimisticPct.StringFixed(0))
		accent = "#45b7d1"
	default:
		code = VerdictBalanced
		label = "균형"
		tip = "보험과 투자 모두 비슷한 수준입니다. 개인 성향에 따라 선택하세요."
		accent = "#a0a0c0"
	}

	return domain.ClassificationResult{
		Policy:         domain.PolicyTiered,
		Code:           code,
		Label:          label,
		Tip:            tip,
		AccentColor:    accent,
		DefensePercent: defense,
	}
}

// Tier is a legacy quiz tier derived from the defense percent alone.
type Tier struct {
	Code  string
	Label string
	Tip   string
}

var tiers = []struct {
	minDefense int
	tier       Tier
}{
	{80, Tier{Code: "SAFE", Label: "철벽 방어러", Tip: "완벽한 준비! 유지만 잘 하면 돼요"}},
	{40, Tier{Code: "PREP", Label: "준비된 현실주의자", Tip: "피크 시기 전에 방어력 한번 점검해봐!"}},
	{15, Tier{Code: "HOPE", Label: "긍정 에너지", Tip: "괜찮겠지~ 하지만 작은 준비는 어때요?"}},
	{0, Tier{Code: "YOLO", Label: "오늘을 사는 자", Tip: "멋있긴 한데, 작은 방어막 하나 정도는?"}},
}

// TierFor maps a defense percent to the legacy 4-tier quiz label.
func TierFor(defensePercent int) Tier {
	for _, entry := range tiers {
		if defensePercent >= entry.minDefense {
			return entry.tier
		}
	}
	return tiers[len(tiers)-1].tier
}

func coveragePercent(value, cost decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return value.Div(cost).Mul(decimal.NewFromInt(100))
}
