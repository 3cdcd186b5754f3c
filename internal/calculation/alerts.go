package calculation

import (
	"fmt"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// maxAlerts caps how many alerts one simulation surfaces.
const maxAlerts = 4

// BuildAlerts derives the advisory list for one simulation: the danger-zone
// span, an insurance-expiry warning when high-risk ages outlive the policy,
// one alert per family-history disease with its projected peak, and an
// all-clear when nothing fired at danger level.
func BuildAlerts(input domain.SimulationInput, curve *domain.RiskCurve, zones []domain.DangerZone, assumptions domain.Assumptions) []domain.Alert {
	alerts := []domain.Alert{}

	if len(zones) > 0 {
		firstAge := curve.Ages[zones[0].Start]
		lastAge := curve.Ages[zones[len(zones)-1].End]
		alerts = append(alerts, domain.Alert{
			Type:  domain.AlertDanger,
			Title: fmt.Sprintf("위험 구간: %d세 ~ %d세", firstAge, lastAge),
			Message: fmt.Sprintf("이 기간 동안 주요 질병 발병 확률이 %s%%를 초과합니다. 보험 커버리지와 건강검진을 집중적으로 관리하세요.",
				assumptions.DangerThresholdPercent.String()),
		})

		// Any danger age past the policy expiry leaves an uncovered window.
		if input.Insurance.ExpireAge < ProjectionUpperAge && lastAge > input.Insurance.ExpireAge {
			alerts = append(alerts, domain.Alert{
				Type:  domain.AlertWarning,
				Title: "보험 만기 후 위험 구간 존재",
				Message: fmt.Sprintf("%d세에 보험이 만기되지만, 이후에도 높은 위험 구간이 있습니다. 투자 자산으로 대비하거나 만기를 연장하세요.",
					input.Insurance.ExpireAge),
			})
		}
	}

	for _, disease := range input.FamilyHistory {
		peakAge, peakRisk, ok := curve.PeakFor(disease)
		if !ok {
			continue
		}
		alerts = append(alerts, domain.Alert{
			Type:  domain.AlertWarning,
			Title: fmt.Sprintf("%s 가족력", disease),
			Message: fmt.Sprintf("%d세에 %s%% 피크. 해당 나이 전에 정밀 검진을 권장합니다.",
				peakAge, peakRisk.StringFixed(1)),
		})
	}

	if len(zones) == 0 {
		alerts = append(alerts, domain.Alert{
			Type:    domain.AlertSuccess,
			Title:   "현재 위험도 낮음",
			Message: "현재 설정 기준으로 급격한 위험 구간이 없습니다.",
		})
	}

	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}
