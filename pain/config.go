package pain

// Thresholds are the dollar cut lines used for ranking and reporting.
type Thresholds struct {
	CriticalPain  float64 `json:"critical_pain"`
	ModeratePain  float64 `json:"moderate_pain"`
	MinViablePain float64 `json:"min_viable_pain"`
}

// SourceToggles enables or disables entire input data sources. A disabled
// source behaves exactly like a missing one: the analyzers reading it emit
// nothing.
type SourceToggles struct {
	FinancialTrends        bool `json:"financial_trends"`
	OperationalMetrics     bool `json:"operational_metrics"`
	EnrichedProfiles       bool `json:"enriched_profiles"`
	RegulatoryIntelligence bool `json:"regulatory_intelligence"`
	OpportunitySignals     bool `json:"opportunity_signals"`
}

// MethodToggles enables or disables individual quantification rules.
type MethodToggles struct {
	GrowthContraction   bool `json:"growth_contraction"`
	MarginErosion       bool `json:"margin_erosion"`
	TechStackAging      bool `json:"tech_stack_aging"`
	ScalingPressure     bool `json:"scaling_pressure"`
	CompetitivePressure bool `json:"competitive_pressure"`
	ComplianceExposure  bool `json:"compliance_exposure"`
	ExecutiveExpansion  bool `json:"executive_expansion"`
}

// Config is the engine's full configuration. It is plain data, loaded once,
// and never mutated after construction.
type Config struct {
	Sources    SourceToggles `json:"sources"`
	Methods    MethodToggles `json:"methods"`
	Thresholds Thresholds    `json:"thresholds"`
}

// DefaultThresholds returns the standard dollar cut lines.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalPain:  1_000_000,
		ModeratePain:  250_000,
		MinViablePain: 50_000,
	}
}

// DefaultConfig returns a config with every source and method enabled and
// default thresholds.
func DefaultConfig() Config {
	return Config{
		Sources: SourceToggles{
			FinancialTrends:        true,
			OperationalMetrics:     true,
			EnrichedProfiles:       true,
			RegulatoryIntelligence: true,
			OpportunitySignals:     true,
		},
		Methods: MethodToggles{
			GrowthContraction:   true,
			MarginErosion:       true,
			TechStackAging:      true,
			ScalingPressure:     true,
			CompetitivePressure: true,
			ComplianceExposure:  true,
			ExecutiveExpansion:  true,
		},
		Thresholds: DefaultThresholds(),
	}
}

// Normalize clamps malformed threshold values at configuration-load time so
// run-time code never has to defend against them. Negative thresholds become
// 0; a moderate threshold above critical is pulled down to critical.
func (c Config) Normalize() Config {
	if c.Thresholds.CriticalPain < 0 {
		c.Thresholds.CriticalPain = 0
	}
	if c.Thresholds.ModeratePain < 0 {
		c.Thresholds.ModeratePain = 0
	}
	if c.Thresholds.MinViablePain < 0 {
		c.Thresholds.MinViablePain = 0
	}
	if c.Thresholds.ModeratePain > c.Thresholds.CriticalPain {
		c.Thresholds.ModeratePain = c.Thresholds.CriticalPain
	}
	if c.Thresholds.MinViablePain > c.Thresholds.ModeratePain {
		c.Thresholds.MinViablePain = c.Thresholds.ModeratePain
	}
	return c
}
