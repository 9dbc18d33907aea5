package pain

import (
	"fmt"
	"strings"
)

// Tech-stack and hiring thresholds
const (
	staleStackAgeYears  = 5.0
	scalingHiresTrigger = 10
)

// OperationalAnalyzer quantifies cost inefficiency from an aging technology
// stack and from engineering scaling pressure.
type OperationalAnalyzer struct {
	cfg    Config
	tables Tables
}

// Name identifies the analyzer in logs and provenance.
func (a *OperationalAnalyzer) Name() string { return "operational" }

// Analyze runs the tech-age and scaling-pressure checks independently.
func (a *OperationalAnalyzer) Analyze(in Inputs) []PainDataPoint {
	var points []PainDataPoint

	if p := a.analyzeTechStack(in); p != nil {
		points = append(points, *p)
	}
	if p := a.analyzeScalingPressure(in); p != nil {
		points = append(points, *p)
	}
	return points
}

// analyzeTechStack estimates maintenance drag from the mean age of the
// company's known technologies. Fires only when the mean age exceeds
// staleStackAgeYears.
func (a *OperationalAnalyzer) analyzeTechStack(in Inputs) *PainDataPoint {
	if !a.cfg.Methods.TechStackAging || len(in.Company.TechStack) == 0 {
		return nil
	}

	referenceYear := in.Now.Year()
	totalAge := 0
	var aged []string
	for _, tech := range in.Company.TechStack {
		age := a.tables.TechAgeYears(tech, referenceYear)
		totalAge += age
		if float64(age) > staleStackAgeYears {
			aged = append(aged, fmt.Sprintf("%s (~%d years old)", tech, age))
		}
	}
	avgAge := float64(totalAge) / float64(len(in.Company.TechStack))
	if avgAge <= staleStackAgeYears {
		return nil
	}

	impact := in.Revenue * min(avgAge/10, 0.15)
	if impact <= 0 {
		return nil
	}
	return &PainDataPoint{
		Source:           "tech_stack",
		Type:             PainOperational,
		Description:      fmt.Sprintf("Technology stack averaging %.1f years old", avgAge),
		QuantifiedImpact: impact,
		Confidence:       0.75,
		Urgency:          UrgencyAnnual,
		Evidence:         aged,
	}
}

// analyzeScalingPressure counts engineering hires; a surge past
// scalingHiresTrigger signals growing operational load.
func (a *OperationalAnalyzer) analyzeScalingPressure(in Inputs) *PainDataPoint {
	if !a.cfg.Sources.EnrichedProfiles || !a.cfg.Methods.ScalingPressure {
		return nil
	}

	count := 0
	for _, profile := range in.Profiles {
		title := strings.ToLower(profile.Title)
		if strings.Contains(title, "engineer") || strings.Contains(title, "developer") {
			count++
		}
	}
	if count <= scalingHiresTrigger {
		return nil
	}

	impact := in.Revenue * min(float64(count)*0.001, 0.05)
	if impact <= 0 {
		return nil
	}
	return &PainDataPoint{
		Source:           "enriched_profiles",
		Type:             PainOperational,
		Description:      fmt.Sprintf("Engineering headcount surge (%d engineering roles)", count),
		QuantifiedImpact: impact,
		Confidence:       0.7,
		Urgency:          UrgencyQuarterly,
		Evidence: []string{
			fmt.Sprintf("%d profiles with engineering or developer titles", count),
		},
	}
}
