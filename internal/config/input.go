// Package config loads and validates the simulation input file.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lifehedge/lifehedge/internal/domain"
	"github.com/lifehedge/lifehedge/internal/refdata"
)

const maxPeakAge = 120

// Config is the top-level input file: one simulation input, optional
// assumption overrides and optional disease-profile overrides. Absent
// assumption fields keep their defaults.
type Config struct {
	Input       domain.SimulationInput  `yaml:"input"`
	Assumptions domain.Assumptions      `yaml:"assumptions"`
	Diseases    []domain.DiseaseProfile `yaml:"diseases"`
}

// Provider builds the reference-data provider, applying any profile
// overrides on top of the built-in tables.
func (c *Config) Provider() *refdata.Provider {
	if len(c.Diseases) == 0 {
		return refdata.NewProvider()
	}
	return refdata.NewProviderWithProfiles(c.Diseases)
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Assumptions are seeded
// with the defaults before unmarshalling so a partial assumptions section
// overrides only the fields it names.
func (ip *InputParser) LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates raw YAML input.
func (ip *InputParser) Parse(data []byte) (*Config, error) {
	config := &Config{Assumptions: domain.DefaultAssumptions()}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfig validates the loaded configuration.
func (ip *InputParser) ValidateConfig(config *Config) error {
	if err := ip.validateInput(&config.Input, config.Provider()); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	for i, profile := range config.Diseases {
		if err := ip.validateProfile(&profile); err != nil {
			return fmt.Errorf("disease %d (%s) validation failed: %w", i, profile.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateInput(input *domain.SimulationInput, data *refdata.Provider) error {
	if !input.Gender.IsValid() {
		return fmt.Errorf("gender must be %q or %q, got %q",
			domain.GenderMale, domain.GenderFemale, input.Gender)
	}
	if input.CurrentAge < 0 {
		return fmt.Errorf("current age must not be negative")
	}
	if input.RetireAge < 0 {
		return fmt.Errorf("retire age must not be negative")
	}

	known := make(map[string]bool)
	for _, name := range data.Diseases() {
		known[name] = true
	}
	for _, name := range input.FamilyHistory {
		if !known[name] {
			return fmt.Errorf("unknown family history disease %q", name)
		}
	}

	if input.Insurance.ExpireAge < 0 {
		return fmt.Errorf("insurance expire age must not be negative")
	}
	for _, payout := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"cancer", input.Insurance.Cancer},
		{"brain", input.Insurance.Brain},
		{"heart", input.Insurance.Heart},
	} {
		if payout.value.IsNegative() {
			return fmt.Errorf("%s payout must not be negative", payout.name)
		}
	}

	if input.Investment.CurrentAsset.IsNegative() {
		return fmt.Errorf("current asset must not be negative")
	}
	if input.Investment.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution must not be negative")
	}
	return nil
}

func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"lump inflation rate", a.LumpInflationRate},
		{"split inflation rate", a.SplitInflationRate},
		{"family history multiplier", a.FamilyHistoryMultiplier},
		{"danger threshold", a.DangerThresholdPercent},
		{"defense scale factor", a.DefenseScaleFactor},
	} {
		if rate.value.IsNegative() {
			return fmt.Errorf("%s must not be negative", rate.name)
		}
	}

	switch a.CostModel {
	case "", domain.CostModelLump, domain.CostModelSplit:
	default:
		return fmt.Errorf("cost model must be %q or %q, got %q",
			domain.CostModelLump, domain.CostModelSplit, a.CostModel)
	}
	switch a.Policy {
	case "", domain.PolicyTiered, domain.PolicyAxes:
	default:
		return fmt.Errorf("policy must be %q or %q, got %q",
			domain.PolicyTiered, domain.PolicyAxes, a.Policy)
	}
	return nil
}

func (ip *InputParser) validateProfile(profile *domain.DiseaseProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch profile.Category {
	case domain.CategoryCancer, domain.CategoryBrain, domain.CategoryHeart:
	default:
		return fmt.Errorf("unknown category %q", profile.Category)
	}
	if profile.PeakAge < 0 || profile.PeakAge > maxPeakAge {
		return fmt.Errorf("peak age must be between 0 and %d", maxPeakAge)
	}
	if profile.BaseRiskPercent.IsNegative() || profile.BaseRiskPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("base risk percent must be between 0 and 100")
	}
	if profile.AvgCost.IsNegative() || profile.DirectCost.IsNegative() {
		return fmt.Errorf("costs must not be negative")
	}
	if profile.TreatmentMonths < 0 {
		return fmt.Errorf("treatment months must not be negative")
	}
	return nil
}
