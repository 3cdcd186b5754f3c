package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

func newTestCostProjector(costModel string) *CostProjector {
	assumptions := domain.DefaultAssumptions()
	assumptions.CostModel = costModel
	return NewCostProjector(refdata.NewProvider(), assumptions)
}

func TestLumpCostAtReferenceAge(t *testing.T) {
	cp := newTestCostProjector(domain.CostModelLump)

	// Zero elapsed years leaves the base cost uninflated:
	// 6500 * 2.0 + 5000 = 18000.
	cost, err := cp.LumpCost("위암", 40, 40)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(18000)), cost.String())
}

func TestLumpCostCompounds(t *testing.T) {
	cp := newTestCostProjector(domain.CostModelLump)

	base := decimal.NewFromInt(18000)
	cost, err := cp.LumpCost("위암", 50, 40)
	require.NoError(t, err)
	expected := base.Mul(decimal.NewFromFloat(1.05).Pow(decimal.NewFromInt(10)))
	assert.True(t, cost.Equal(expected), "got %s want %s", cost, expected)
}

func TestLumpCostClampsNegativeYears(t *testing.T) {
	cp := newTestCostProjector(domain.CostModelLump)

	// Onset before the reference age clamps elapsed years to zero.
	cost, err := cp.LumpCost("위암", 30, 40)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(18000)))
}

func TestSplitCostDirectPlusIncome(t *testing.T) {
	cp := newTestCostProjector(domain.CostModelSplit)

	// 위암 at 50 from reference 40: direct = round(2000 * 1.03^10) = 2688,
	// indirect = 12 months at the 50s median income of 380 = 4560.
	cost, err := cp.SplitCost("위암", 50, 40)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(2688+4560)), cost.String())
}

func TestSplitCostUsesIncomeFallbackBracket(t *testing.T) {
	cp := newTestCostProjector(domain.CostModelSplit)

	// 치매 at 80: the treatment midpoint (82) has no income bracket, so the
	// 50s fallback of 380/month applies across the 60-month window.
	cost, err := cp.SplitCost("치매", 80, 80)
	require.NoError(t, err)
	expected := decimal.NewFromInt(3800).Add(decimal.NewFromInt(380 * 60))
	assert.True(t, cost.Equal(expected), "got %s want %s", cost, expected)
}

func TestProjectCostDispatch(t *testing.T) {
	lump := newTestCostProjector(domain.CostModelLump)
	split := newTestCostProjector(domain.CostModelSplit)
	unknown := newTestCostProjector("weird")

	lumpCost, err := lump.ProjectCost("위암", 40, 40)
	require.NoError(t, err)
	splitCost, err := split.ProjectCost("위암", 40, 40)
	require.NoError(t, err)
	assert.False(t, lumpCost.Equal(splitCost))

	// Empty model selects the lump path.
	fallback := newTestCostProjector("")
	cost, err := fallback.ProjectCost("위암", 40, 40)
	require.NoError(t, err)
	assert.True(t, cost.Equal(lumpCost))

	_, err = unknown.ProjectCost("위암", 40, 40)
	assert.Error(t, err)
}

func TestCostUnknownDisease(t *testing.T) {
	cp := newTestCostProjector(domain.CostModelSplit)
	_, err := cp.ProjectCost("없는질병", 50, 40)
	assert.Error(t, err)
}
