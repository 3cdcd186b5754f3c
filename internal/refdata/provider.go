package refdata

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// incomeFallbackBracket is the bracket used when the computed decade is
// absent from the median-income table.
const incomeFallbackBracket = "50s"

// AgeToBracket maps an age to its coarse decade bracket. Reference tables
// are bucketed, not continuous; ages outside 20-89 clamp to the edge
// brackets.
func AgeToBracket(age int) string {
	switch {
	case age < 30:
		return "20s"
	case age < 40:
		return "30s"
	case age < 50:
		return "40s"
	case age < 60:
		return "50s"
	case age < 70:
		return "60s"
	case age < 80:
		return "70s"
	default:
		return "80s"
	}
}

// Provider is the reference-data source for the engine: disease profiles,
// category membership, the bucketed risk table and the median-income lookup
// with its documented 50s-bracket fallback. A Provider is immutable after
// construction and safe to share across requests.
type Provider struct {
	profiles      map[string]domain.DiseaseProfile
	riskPercents  map[string]map[domain.Gender]map[string]decimal.Decimal
	medianIncomes map[string]decimal.Decimal
	watchList     []string
	seriesList    []string
}

// NewProvider builds a provider over the built-in reference tables.
func NewProvider() *Provider {
	return NewProviderWithProfiles(defaultProfiles())
}

// NewProviderWithProfiles builds a provider with overridden disease profiles
// but the built-in risk and income tables. Profiles for diseases absent from
// the risk table are allowed; risk lookups for them fail fast.
func NewProviderWithProfiles(profiles []domain.DiseaseProfile) *Provider {
	p := &Provider{
		profiles:      make(map[string]domain.DiseaseProfile, len(profiles)),
		riskPercents:  make(map[string]map[domain.Gender]map[string]decimal.Decimal),
		medianIncomes: make(map[string]decimal.Decimal),
		watchList:     defaultWatchList(),
		seriesList:    costSeriesDiseases(),
	}
	for _, profile := range profiles {
		p.profiles[profile.Name] = profile
	}
	for disease, byGender := range defaultRiskPercents() {
		p.riskPercents[disease] = make(map[domain.Gender]map[string]decimal.Decimal, len(byGender))
		for gender, byBracket := range byGender {
			brackets := make(map[string]decimal.Decimal, len(byBracket))
			for bracket, pct := range byBracket {
				brackets[bracket] = decimal.NewFromFloat(pct)
			}
			p.riskPercents[disease][gender] = brackets
		}
	}
	for bracket, income := range defaultMedianIncomes() {
		p.medianIncomes[bracket] = decimal.NewFromFloat(income)
	}
	return p
}

// Profile returns the reference profile for a disease name.
func (p *Provider) Profile(name string) (domain.DiseaseProfile, error) {
	profile, ok := p.profiles[name]
	if !ok {
		return domain.DiseaseProfile{}, &ConfigurationError{
			Operation: "profile_lookup",
			Message:   fmt.Sprintf("unknown disease %q", name),
		}
	}
	return profile, nil
}

// CategoryOf returns the insurance category a disease belongs to. Every
// disease must belong to exactly one category; a missing mapping degrades to
// zero coverage at the caller, so the second return distinguishes that case.
func (p *Provider) CategoryOf(name string) (domain.Category, bool) {
	profile, ok := p.profiles[name]
	if !ok || profile.Category == "" {
		return "", false
	}
	return profile.Category, true
}

// RiskPercent returns the bucketed base risk (percent) for a disease, gender
// and age. An unknown (disease, gender, bracket) combination is a
// configuration error, not a runtime fault: it fails fast here.
func (p *Provider) RiskPercent(disease string, gender domain.Gender, age int) (decimal.Decimal, error) {
	byGender, ok := p.riskPercents[disease]
	if !ok {
		return decimal.Zero, &ConfigurationError{
			Operation: "risk_lookup",
			Message:   fmt.Sprintf("no risk table for disease %q", disease),
		}
	}
	byBracket, ok := byGender[gender]
	if !ok {
		return decimal.Zero, &ConfigurationError{
			Operation: "risk_lookup",
			Message:   fmt.Sprintf("no risk table for disease %q, gender %q", disease, gender),
		}
	}
	bracket := AgeToBracket(age)
	pct, ok := byBracket[bracket]
	if !ok {
		return decimal.Zero, &ConfigurationError{
			Operation: "risk_lookup",
			Message:   fmt.Sprintf("no %s bracket for disease %q, gender %q", bracket, disease, gender),
		}
	}
	return pct, nil
}

// MedianIncome returns the monthly median income for the decade bracket of
// the given age, falling back to the 50s bracket when the computed bracket is
// absent. Only a table missing even the fallback bracket is an error.
func (p *Provider) MedianIncome(age int) (decimal.Decimal, error) {
	if income, ok := p.medianIncomes[AgeToBracket(age)]; ok {
		return income, nil
	}
	if income, ok := p.medianIncomes[incomeFallbackBracket]; ok {
		return income, nil
	}
	return decimal.Zero, &ConfigurationError{
		Operation: "income_lookup",
		Message:   fmt.Sprintf("no income bracket for age %d and no %s fallback", age, incomeFallbackBracket),
	}
}

// Diseases returns all known disease names in sorted order.
func (p *Provider) Diseases() []string {
	names := make([]string, 0, len(p.profiles))
	for name := range p.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WatchList returns the fixed disease set used for combined-risk and danger
// zone detection.
func (p *Provider) WatchList() []string {
	return p.watchList
}

// CostSeriesDiseases returns the per-category representatives charted in the
// cost-comparison series.
func (p *Provider) CostSeriesDiseases() []string {
	return p.seriesList
}
