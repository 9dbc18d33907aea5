package pain

import (
	"fmt"
	"strings"
)

// executiveHiresTrigger is the executive-profile count above which a
// strategic point is emitted.
const executiveHiresTrigger = 2

// StrategicAnalyzer quantifies opportunity cost from executive expansion:
// a cluster of new leadership titles usually precedes a strategy shift.
type StrategicAnalyzer struct {
	cfg Config
}

// Name identifies the analyzer in logs and provenance.
func (a *StrategicAnalyzer) Name() string { return "strategic" }

// Analyze counts chief/VP/director titles and emits one strategic point
// when the count exceeds executiveHiresTrigger.
func (a *StrategicAnalyzer) Analyze(in Inputs) []PainDataPoint {
	if !a.cfg.Sources.EnrichedProfiles || !a.cfg.Methods.ExecutiveExpansion {
		return nil
	}

	count := 0
	for _, profile := range in.Profiles {
		title := strings.ToLower(profile.Title)
		if strings.Contains(title, "chief") || strings.Contains(title, "vp") ||
			strings.Contains(title, "director") {
			count++
		}
	}
	if count <= executiveHiresTrigger {
		return nil
	}

	impact := in.Revenue * min(float64(count)*0.02, 0.10)
	if impact <= 0 {
		return nil
	}
	return []PainDataPoint{{
		Source:           "executive_profiles",
		Type:             PainStrategic,
		Description:      fmt.Sprintf("Leadership expansion underway (%d executive roles)", count),
		QuantifiedImpact: impact,
		Confidence:       0.65,
		Urgency:          UrgencyStrategic,
		Evidence: []string{
			fmt.Sprintf("%d profiles with chief, VP or director titles", count),
		},
	}}
}
