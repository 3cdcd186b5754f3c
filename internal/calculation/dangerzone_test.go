package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lifehedge/lifehedge/internal/domain"
)

func decimals(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestDetectDangerZones(t *testing.T) {
	threshold := decimal.NewFromFloat(2.0)

	tests := []struct {
		name     string
		combined []decimal.Decimal
		expected []domain.DangerZone
	}{
		{
			name:     "single interior run",
			combined: decimals(1, 1, 3, 3, 1),
			expected: []domain.DangerZone{{Start: 2, End: 3}},
		},
		{
			name:     "open run closes at the final index",
			combined: decimals(3, 3, 3),
			expected: []domain.DangerZone{{Start: 0, End: 2}},
		},
		{
			name:     "no crossing",
			combined: decimals(1, 1),
			expected: []domain.DangerZone{},
		},
		{
			name:     "boundary value counts as danger",
			combined: decimals(1, 2.0, 1),
			expected: []domain.DangerZone{{Start: 1, End: 1}},
		},
		{
			name:     "two separate runs",
			combined: decimals(3, 1, 1, 4, 5),
			expected: []domain.DangerZone{{Start: 0, End: 0}, {Start: 3, End: 4}},
		},
		{
			name:     "empty series",
			combined: nil,
			expected: []domain.DangerZone{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones := DetectDangerZones(tt.combined, threshold)
			assert.Equal(t, tt.expected, zones)
		})
	}
}
