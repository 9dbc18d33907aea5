package pain

import "fmt"

// CompetitiveActivityType is the event type counted toward competitive
// pressure.
const CompetitiveActivityType = "competitive_activity"

// CompetitiveAnalyzer quantifies competitive disadvantage from typed
// activity events in the opportunity-signal feed.
type CompetitiveAnalyzer struct {
	cfg Config
}

// Name identifies the analyzer in logs and provenance.
func (a *CompetitiveAnalyzer) Name() string { return "competitive" }

// Analyze emits one competitive point when any competitive-activity events
// are present, scaled by event count.
func (a *CompetitiveAnalyzer) Analyze(in Inputs) []PainDataPoint {
	if !a.cfg.Sources.OpportunitySignals || !a.cfg.Methods.CompetitivePressure {
		return nil
	}

	count := 0
	for _, signal := range in.Signals {
		if signal.Type == CompetitiveActivityType {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	impact := in.Revenue * min(float64(count)*10/1000, 0.10)
	if impact <= 0 {
		return nil
	}
	return []PainDataPoint{{
		Source:           "opportunity_signals",
		Type:             PainCompetitive,
		Description:      fmt.Sprintf("Competitive activity detected (%d events)", count),
		QuantifiedImpact: impact,
		Confidence:       0.7,
		Urgency:          UrgencyImmediate,
		Evidence: []string{
			fmt.Sprintf("%d competitive_activity events in signal feed", count),
		},
	}}
}
