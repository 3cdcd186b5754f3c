package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// ConsoleFormatter renders human-readable terminal reports.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) FormatSimulation(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintln(&buf, "생애 질병 리스크 시뮬레이션")
	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintf(&buf, "대상: %s / %d세, 가족력 %d건\n",
		genderLabel(result.Input.Gender), result.Input.CurrentAge, len(result.Input.FamilyHistory))
	fmt.Fprintln(&buf)

	if result.Summary.TopDisease != "" {
		fmt.Fprintln(&buf, "핵심 요약")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		fmt.Fprintf(&buf, "  최고 위험 질병:   %s\n", result.Summary.TopDisease)
		fmt.Fprintf(&buf, "  피크 시기:        %d세 (%s)\n",
			result.Summary.PeakAge, FormatPercent(result.Summary.PeakRiskPercent))
		fmt.Fprintf(&buf, "  예상 비용:        %s\n", FormatMoney(result.Summary.PeakCost))
		fmt.Fprintf(&buf, "  보험 보장:        %s\n", FormatMoney(result.Summary.InsuranceCoverage))
		fmt.Fprintf(&buf, "  보장 공백:        %s\n", FormatMoney(result.Summary.CoverageGap))
		fmt.Fprintln(&buf)
	}

	if len(result.DangerZones) > 0 {
		fmt.Fprintln(&buf, "위험 구간")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, zone := range result.DangerZones {
			fmt.Fprintf(&buf, "  %d세 ~ %d세\n",
				result.Curve.Ages[zone.Start], result.Curve.Ages[zone.End])
		}
		fmt.Fprintln(&buf)
	}

	if len(result.Alerts) > 0 {
		fmt.Fprintln(&buf, "알림")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, alert := range result.Alerts {
			fmt.Fprintf(&buf, "  [%s] %s\n", strings.ToUpper(alert.Type), alert.Title)
			fmt.Fprintf(&buf, "      %s\n", alert.Message)
		}
		fmt.Fprintln(&buf)
	}

	if len(result.CostSeries) > 0 {
		fmt.Fprintln(&buf, "비용 비교 (5년 단위)")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		diseases := seriesDiseases(result.CostSeries)
		fmt.Fprintf(&buf, "  %-6s", "나이")
		for _, disease := range diseases {
			fmt.Fprintf(&buf, " %14s", disease)
		}
		fmt.Fprintf(&buf, " %14s %14s\n", "보험", "투자")
		for _, point := range result.CostSeries {
			fmt.Fprintf(&buf, "  %-6d", point.Age)
			for _, disease := range diseases {
				fmt.Fprintf(&buf, " %14s", FormatMoney(point.DiseaseCosts[disease]))
			}
			fmt.Fprintf(&buf, " %14s %14s\n",
				FormatMoney(point.InsurancePayout), FormatMoney(point.InvestmentValue))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "모델 가정")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	for _, note := range ModelNotes {
		fmt.Fprintf(&buf, "  • %s\n", note)
	}

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatOnset(result *domain.OnsetResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintf(&buf, "조기 발병 시나리오: %s, %d세\n", result.Disease, result.OnsetAge)
	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintf(&buf, "  예상 비용:          %s\n", FormatMoney(result.DiseaseCost))
	fmt.Fprintf(&buf, "  보험금:             %s (%s%% 커버)\n",
		FormatMoney(result.Payout), result.InsuranceCoveragePct.StringFixed(0))
	fmt.Fprintf(&buf, "  투자 평가액:        %s (%s%% 커버)\n",
		FormatMoney(result.Optimistic.InvestmentValue), result.InvestmentCoveragePct.StringFixed(0))
	fmt.Fprintf(&buf, "  비관 시나리오:      %s (%s%% 커버)\n",
		FormatMoney(result.Pessimistic.InvestmentValue), result.PessimisticCoveragePct.StringFixed(0))
	fmt.Fprintf(&buf, "  누적 납입액:        %s\n", FormatMoney(result.Optimistic.TotalPremiumPaid))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  판정: %s\n", result.Verdict.Label)
	fmt.Fprintf(&buf, "  %s\n", result.Verdict.Tip)

	return buf.Bytes(), nil
}

func (ConsoleFormatter) FormatQuiz(result *domain.QuizResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintln(&buf, "건강 리스크 진단")
	fmt.Fprintln(&buf, strings.Repeat("=", 70))
	fmt.Fprintf(&buf, "  주의 질병:     %s\n", result.MainDisease)
	fmt.Fprintf(&buf, "  예상 피크:     %d세 (%s)\n", result.PeakAge, FormatPercent(result.RiskPercent))
	fmt.Fprintf(&buf, "  예상 비용:     %s\n", FormatMoney(result.ExpectedCost))
	fmt.Fprintf(&buf, "  방어력:        %d%%\n", result.DefensePercent)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  유형: %s (%s)\n", result.Type.Label, result.Type.Code)
	fmt.Fprintf(&buf, "  %s\n", result.Type.Tip)

	return buf.Bytes(), nil
}

func genderLabel(gender domain.Gender) string {
	if gender == domain.GenderFemale {
		return "여성"
	}
	return "남성"
}

// seriesDiseases collects the charted disease names in sorted order so table
// columns stay stable across runs.
func seriesDiseases(series []domain.CostSeriesPoint) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, point := range series {
		for name := range point.DiseaseCosts {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
