package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

func newTestRiskProjector() *RiskProjector {
	return NewRiskProjector(refdata.NewProvider(), domain.DefaultAssumptions())
}

func TestProjectRiskCurveShape(t *testing.T) {
	rp := newTestRiskProjector()

	curve, err := rp.ProjectRisk(domain.GenderMale, 40, nil)
	require.NoError(t, err)

	assert.Equal(t, 46, curve.Len(), "ages 40..85 inclusive")
	assert.Equal(t, 40, curve.Ages[0])
	assert.Equal(t, 85, curve.Ages[curve.Len()-1])
	for disease, series := range curve.ByDisease {
		assert.Len(t, series, curve.Len(), disease)
	}
}

func TestProjectRiskFamilyHistoryMultiplier(t *testing.T) {
	rp := newTestRiskProjector()

	plain, err := rp.ProjectRisk(domain.GenderMale, 40, nil)
	require.NoError(t, err)
	withHistory, err := rp.ProjectRisk(domain.GenderMale, 40, []string{"위암"})
	require.NoError(t, err)

	multiplier := decimal.NewFromFloat(1.5)
	for i := range plain.Ages {
		expected := plain.ByDisease["위암"][i].Mul(multiplier)
		assert.True(t, withHistory.ByDisease["위암"][i].Equal(expected),
			"위암 at age %d", plain.Ages[i])
		// Other diseases are untouched.
		assert.True(t, withHistory.ByDisease["치매"][i].Equal(plain.ByDisease["치매"][i]))
	}
}

func TestProjectRiskPastHorizonIsEmpty(t *testing.T) {
	rp := newTestRiskProjector()

	curve, err := rp.ProjectRisk(domain.GenderFemale, 86, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, curve.Len())
}

func TestCombinedRiskTakesPerAgeMax(t *testing.T) {
	curve := &domain.RiskCurve{
		Ages: []int{50, 51},
		ByDisease: map[string][]decimal.Decimal{
			"a": {decimal.NewFromInt(1), decimal.NewFromInt(4)},
			"b": {decimal.NewFromInt(3), decimal.NewFromInt(2)},
		},
	}

	combined := CombinedRisk(curve, []string{"a", "b"})
	require.Len(t, combined, 2)
	assert.True(t, combined[0].Equal(decimal.NewFromInt(3)))
	assert.True(t, combined[1].Equal(decimal.NewFromInt(4)))

	// Watch-list entries absent from the curve contribute nothing.
	combined = CombinedRisk(curve, []string{"a", "missing"})
	assert.True(t, combined[0].Equal(decimal.NewFromInt(1)))
}
