package refdata

import (
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifehedge/lifehedge/internal/domain"
)

func TestAgeToBracket(t *testing.T) {
	tests := []struct {
		age     int
		bracket string
	}{
		{0, "20s"},
		{25, "20s"},
		{29, "20s"},
		{30, "30s"},
		{45, "40s"},
		{59, "50s"},
		{60, "60s"},
		{79, "70s"},
		{80, "80s"},
		{95, "80s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bracket, AgeToBracket(tt.age), "age %d", tt.age)
	}
}

func TestProfileLookup(t *testing.T) {
	p := NewProvider()

	profile, err := p.Profile("위암")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCancer, profile.Category)
	assert.Equal(t, 65, profile.PeakAge)

	_, err = p.Profile("없는질병")
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "profile_lookup", cfgErr.Operation)
}

func TestRiskPercentLookup(t *testing.T) {
	p := NewProvider()

	risk, err := p.RiskPercent("뇌혈관질환", domain.GenderMale, 55)
	require.NoError(t, err)
	assert.True(t, risk.Equal(decimal.NewFromFloat(2.4)))

	// Same bracket, so same value across the decade.
	risk2, err := p.RiskPercent("뇌혈관질환", domain.GenderMale, 51)
	require.NoError(t, err)
	assert.True(t, risk.Equal(risk2))

	_, err = p.RiskPercent("없는질병", domain.GenderMale, 55)
	assert.Error(t, err)
}

func TestMedianIncomeFallback(t *testing.T) {
	p := NewProvider()

	income, err := p.MedianIncome(45)
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.NewFromInt(400)))

	// The 70s and 80s brackets are absent: the lookup falls back to the 50s
	// bracket instead of failing.
	for _, age := range []int{72, 85} {
		income, err := p.MedianIncome(age)
		require.NoError(t, err)
		assert.True(t, income.Equal(decimal.NewFromInt(380)), "age %d", age)
	}
}

func TestDiseasesSorted(t *testing.T) {
	p := NewProvider()
	names := p.Diseases()
	assert.Len(t, names, 6)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestCategoryOf(t *testing.T) {
	p := NewProvider()

	category, ok := p.CategoryOf("치매")
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryBrain, category)

	_, ok = p.CategoryOf("없는질병")
	assert.False(t, ok)
}

func TestProviderWithProfileOverrides(t *testing.T) {
	custom := []domain.DiseaseProfile{{
		Name:            "위암",
		Category:        domain.CategoryCancer,
		PeakAge:         60,
		BaseRiskPercent: decimal.NewFromInt(5),
		AvgCost:         decimal.NewFromInt(5000),
		DirectCost:      decimal.NewFromInt(1500),
		TreatmentMonths: 6,
	}}
	p := NewProviderWithProfiles(custom)

	profile, err := p.Profile("위암")
	require.NoError(t, err)
	assert.Equal(t, 60, profile.PeakAge)

	// Risk tables are built-in even when profiles are overridden.
	_, err = p.RiskPercent("위암", domain.GenderFemale, 40)
	assert.NoError(t, err)
}
