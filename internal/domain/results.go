package domain

import (
	"github.com/shopspring/decimal"
)

// RiskCurve is the per-disease risk-by-age projection. Ages and every series
// in ByDisease have identical length; index i of a series is the risk percent
// at Ages[i]. The curve is produced fresh per request and never mutated.
type RiskCurve struct {
	Ages      []int                        `json:"ages"`
	ByDisease map[string][]decimal.Decimal `json:"byDisease"`
}

// Len returns the number of projected ages
func (rc *RiskCurve) Len() int { return len(rc.Ages) }

// PeakFor returns the peak risk percent for a disease and the age at which it
// occurs. An empty curve or unknown disease yields (0, 0, false).
func (rc *RiskCurve) PeakFor(disease string) (age int, percent decimal.Decimal, ok bool) {
	series, found := rc.ByDisease[disease]
	if !found || len(series) == 0 {
		return 0, decimal.Zero, false
	}
	peakIdx := 0
	for i, v := range series {
		if v.GreaterThan(series[peakIdx]) {
			peakIdx = i
		}
	}
	return rc.Ages[peakIdx], series[peakIdx], true
}

// CostComparison is the outcome of one insurance-vs-investment run for a
// single (startAge, targetAge, premium, rate, payout) tuple. Transient: it is
// consumed immediately by the caller and never persisted.
type CostComparison struct {
	InsuranceValue   decimal.Decimal `json:"insuranceValue"`
	InvestmentValue  decimal.Decimal `json:"investmentValue"`
	TotalPremiumPaid decimal.Decimal `json:"totalPremiumPaid"`
}

// DangerZone is a contiguous index range of the combined-risk series where
// the risk meets or exceeds the alert threshold. Start and End are inclusive
// indices into RiskCurve.Ages.
type DangerZone struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Alert severity levels
const (
	AlertDanger  = "danger"
	AlertWarning = "warning"
	AlertSuccess = "success"
)

// Alert is a derived advisory message for the rendered result.
type Alert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SummaryStats are the headline figures of a simulation: the single
// highest-risk disease, its peak, the projected cost at that peak, and how
// far the matching insurance payout falls short.
type SummaryStats struct {
	TopDisease        string          `json:"topDisease"`
	PeakAge           int             `json:"peakAge"`
	PeakRiskPercent   decimal.Decimal `json:"peakRiskPercent"`
	PeakCost          decimal.Decimal `json:"peakCost"`
	InsuranceCoverage decimal.Decimal `json:"insuranceCoverage"`
	CoverageGap       decimal.Decimal `json:"coverageGap"`
}

// CostSeriesPoint is one 5-year step of the cost-comparison series: projected
// onset costs for the watch diseases against the payout and the invested
// reference premium at that age.
type CostSeriesPoint struct {
	Age             int                        `json:"age"`
	DiseaseCosts    map[string]decimal.Decimal `json:"diseaseCosts"`
	InsurancePayout decimal.Decimal            `json:"insurancePayout"`
	InvestmentValue decimal.Decimal            `json:"investmentValue"`
}

// SimulationResult bundles every derived output of one request. All fields
// are value objects discarded after one render cycle.
type SimulationResult struct {
	Input       SimulationInput   `json:"input"`
	Curve       *RiskCurve        `json:"curve"`
	DangerZones []DangerZone      `json:"dangerZones"`
	Alerts      []Alert           `json:"alerts"`
	Summary     SummaryStats      `json:"summary"`
	CostSeries  []CostSeriesPoint `json:"costSeries"`
}

// ClassificationResult is the outcome of a classification policy: either a
// tiered verdict label or a 4-axis type code, plus the supporting figures
// used to render it.
type ClassificationResult struct {
	Policy         string `json:"policy"`
	Code           string `json:"code"`
	Label          string `json:"label"`
	Tip            string `json:"tip"`
	AccentColor    string `json:"accentColor"`
	DefensePercent int    `json:"defensePercent"`
}

// OnsetResult is the early-onset scenario outcome for one (disease, age)
// hypothesis: the projected cost, the valid payout, both comparison runs and
// the verdict.
type OnsetResult struct {
	Disease     string               `json:"disease"`
	OnsetAge    int                  `json:"onsetAge"`
	DiseaseCost decimal.Decimal      `json:"diseaseCost"`
	Payout      decimal.Decimal      `json:"payout"`
	Optimistic  CostComparison       `json:"optimistic"`
	Pessimistic CostComparison       `json:"pessimistic"`
	// Coverage percentages of DiseaseCost, rounded to whole percents.
	InsuranceCoveragePct   decimal.Decimal      `json:"insuranceCoveragePct"`
	InvestmentCoveragePct  decimal.Decimal      `json:"investmentCoveragePct"`
	PessimisticCoveragePct decimal.Decimal      `json:"pessimisticCoveragePct"`
	Verdict                ClassificationResult `json:"verdict"`
}

// QuizResult is the current-generation quiz outcome: the main disease to
// prepare for, its (family-history adjusted) peak, the inflated expected cost
// and the personality-style classification.
type QuizResult struct {
	MainDisease    string               `json:"mainDisease"`
	PeakAge        int                  `json:"peakAge"`
	RiskPercent    decimal.Decimal      `json:"riskPercent"`
	ExpectedCost   decimal.Decimal      `json:"expectedCost"`
	DefensePercent int                  `json:"defensePercent"`
	Type           ClassificationResult `json:"type"`
}
