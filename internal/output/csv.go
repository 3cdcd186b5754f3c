package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// CSVFormatter implements the summary CSV outputs (one row per series point
// or scenario).
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) FormatSimulation(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	diseases := seriesDiseases(result.CostSeries)
	header := []string{"Age"}
	header = append(header, diseases...)
	header = append(header, "InsurancePayout", "InvestmentValue")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, point := range result.CostSeries {
		row := []string{strconv.Itoa(point.Age)}
		for _, disease := range diseases {
			row = append(row, point.DiseaseCosts[disease].StringFixed(0))
		}
		row = append(row,
			point.InsurancePayout.StringFixed(0),
			point.InvestmentValue.StringFixed(0),
		)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatOnset(result *domain.OnsetResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Disease", "OnsetAge", "DiseaseCost", "Payout", "InvestmentValue", "PessimisticValue", "TotalPremiumPaid", "Verdict"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		result.Disease,
		strconv.Itoa(result.OnsetAge),
		result.DiseaseCost.StringFixed(0),
		result.Payout.StringFixed(0),
		result.Optimistic.InvestmentValue.StringFixed(0),
		result.Pessimistic.InvestmentValue.StringFixed(0),
		result.Optimistic.TotalPremiumPaid.StringFixed(0),
		result.Verdict.Code,
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (CSVFormatter) FormatQuiz(result *domain.QuizResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"MainDisease", "PeakAge", "RiskPercent", "ExpectedCost", "DefensePercent", "TypeCode", "TypeLabel"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		result.MainDisease,
		strconv.Itoa(result.PeakAge),
		result.RiskPercent.StringFixed(1),
		result.ExpectedCost.StringFixed(0),
		strconv.Itoa(result.DefensePercent),
		result.Type.Code,
		result.Type.Label,
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
