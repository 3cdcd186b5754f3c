package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifehedge/lifehedge/internal/domain"
)

func baseInput() Input {
	return Input{
		DiseaseCost:         decimal.NewFromInt(8000),
		InsurancePayout:     decimal.NewFromInt(3000),
		InvestmentValue:     decimal.NewFromInt(3100),
		PessimisticValue:    decimal.NewFromInt(2500),
		YearsToTarget:       20,
		FamilyHistory:       true,
		MonthlyContribution: decimal.NewFromInt(30),
		LongTermPreference:  true,
		StablePreference:    true,
	}
}

func TestByName(t *testing.T) {
	policy, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyTiered, policy.Name())

	policy, err = ByName(domain.PolicyAxes)
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyAxes, policy.Name())

	_, err = ByName("nope")
	assert.Error(t, err)
}

func TestTieredShortHorizonPrecedence(t *testing.T) {
	in := baseInput()
	in.YearsToTarget = 5
	// Even with the investment far ahead, the short horizon wins.
	in.InvestmentValue = in.InsurancePayout.Mul(decimal.NewFromInt(2))

	result := TieredPolicy{}.Classify(in, domain.DefaultAssumptions())
	assert.Equal(t, VerdictInsurance, result.Code)
}

func TestTieredZeroPayout(t *testing.T) {
	in := baseInput()
	in.InsurancePayout = decimal.Zero

	result := TieredPolicy{}.Classify(in, domain.DefaultAssumptions())
	assert.Equal(t, VerdictInvestmentOnly, result.Code)
}

func TestTieredAdvantageBands(t *testing.T) {
	assumptions := domain.DefaultAssumptions()

	tests := []struct {
		name       string
		payout     int64
		investment int64
		expected   string
	}{
		{"investment far ahead", 3000, 3700, VerdictInvestment},
		{"payout far ahead", 3700, 3000, VerdictInsurance},
		{"inside the band", 3000, 3300, VerdictBalanced},
		{"exactly 1.2x is still balanced", 3000, 3600, VerdictBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.InsurancePayout = decimal.NewFromInt(tt.payout)
			in.InvestmentValue = decimal.NewFromInt(tt.investment)

			result := TieredPolicy{}.Classify(in, assumptions)
			assert.Equal(t, tt.expected, result.Code)
			assert.NotEmpty(t, result.Label)
			assert.NotEmpty(t, result.Tip)
		})
	}
}

func TestAxisCodesDistinct(t *testing.T) {
	assumptions := domain.DefaultAssumptions()
	seen := make(map[string]bool)

	for _, history := range []bool{true, false} {
		for _, defender := range []bool{true, false} {
			for _, longTerm := range []bool{true, false} {
				for _, stable := range []bool{true, false} {
					in := baseInput()
					in.FamilyHistory = history
					in.LongTermPreference = longTerm
					in.StablePreference = stable
					if defender {
						in.MonthlyContribution = decimal.NewFromInt(20)
					} else {
						in.MonthlyContribution = decimal.NewFromInt(19)
					}

					result := AxisPolicy{}.Classify(in, assumptions)
					require.Len(t, result.Code, 4)
					assert.False(t, seen[result.Code], "duplicate code %s", result.Code)
					seen[result.Code] = true
					assert.NotEmpty(t, result.Label, result.Code)
					assert.NotEmpty(t, result.Tip, result.Code)
					assert.NotEmpty(t, result.AccentColor, result.Code)
				}
			}
		}
	}
	assert.Len(t, seen, 16)
}

func TestAxisTableComplete(t *testing.T) {
	assert.Len(t, AllCodes(), 16)
	for code, profile := range typeTable {
		assert.Len(t, code, 4)
		assert.NotEmpty(t, profile.Label, code)
	}
}

func TestDefensePercent(t *testing.T) {
	scale := decimal.NewFromFloat(2.5)

	tests := []struct {
		contribution int64
		expected     int
	}{
		{0, 0},
		{8, 20},
		{30, 75},
		{40, 100},
		{100, 100},
	}

	for _, tt := range tests {
		got := DefensePercent(decimal.NewFromInt(tt.contribution), scale)
		assert.Equal(t, tt.expected, got, "contribution %d", tt.contribution)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		defense int
		code    string
	}{
		{100, "SAFE"},
		{80, "SAFE"},
		{79, "PREP"},
		{40, "PREP"},
		{39, "HOPE"},
		{15, "HOPE"},
		{14, "YOLO"},
		{0, "YOLO"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, TierFor(tt.defense).Code, "defense %d", tt.defense)
	}
}
