package pain

import "fmt"

// RegulatoryRiskTrigger is the 0-100 risk score above which a regulatory
// point is emitted.
const RegulatoryRiskTrigger = 70.0

// ComplianceAnalyzer quantifies compliance exposure from the regulatory
// risk score.
type ComplianceAnalyzer struct {
	cfg Config
}

// Name identifies the analyzer in logs and provenance.
func (a *ComplianceAnalyzer) Name() string { return "compliance" }

// Analyze emits one regulatory point when the risk score crosses
// RegulatoryRiskTrigger.
func (a *ComplianceAnalyzer) Analyze(in Inputs) []PainDataPoint {
	if !a.cfg.Sources.RegulatoryIntelligence || !a.cfg.Methods.ComplianceExposure {
		return nil
	}
	if in.Bundle.RegulatoryIntelligence == nil || in.Bundle.RegulatoryIntelligence.RiskScore == nil {
		return nil
	}

	risk := *in.Bundle.RegulatoryIntelligence.RiskScore
	if risk <= RegulatoryRiskTrigger {
		return nil
	}

	impact := in.Revenue * risk / 1000
	if impact <= 0 {
		return nil
	}
	return []PainDataPoint{{
		Source:           "regulatory_intelligence",
		Type:             PainRegulatory,
		Description:      fmt.Sprintf("Elevated regulatory risk (score %.0f/100)", risk),
		QuantifiedImpact: impact,
		Confidence:       0.9,
		Urgency:          UrgencyImmediate,
		Evidence: []string{
			fmt.Sprintf("Regulatory risk score %.0f exceeds %.0f threshold", risk, RegulatoryRiskTrigger),
		},
	}}
}
