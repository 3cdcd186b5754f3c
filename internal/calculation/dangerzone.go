package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// DetectDangerZones scans a combined-risk series and returns the ordered,
// contiguous index ranges where the risk is at or above the threshold. A run
// still open at the end of the series is closed at the final index; a series
// with no crossing yields an empty list, an all-danger series a single range
// spanning the whole series.
func DetectDangerZones(combined []decimal.Decimal, threshold decimal.Decimal) []domain.DangerZone {
	zones := []domain.DangerZone{}
	inDanger := false
	start := 0

	for i, risk := range combined {
		above := risk.GreaterThanOrEqual(threshold)
		switch {
		case above && !inDanger:
			inDanger = true
			start = i
		case !above && inDanger:
			inDanger = false
			zones = append(zones, domain.DangerZone{Start: start, End: i - 1})
		}
	}
	if inDanger {
		zones = append(zones, domain.DangerZone{Start: start, End: len(combined) - 1})
	}
	return zones
}
