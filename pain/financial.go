package pain

import (
	"fmt"
	"math"
)

// FinancialAnalyzer quantifies revenue contraction and margin erosion. The
// two checks are independent: either, both, or neither may fire.
type FinancialAnalyzer struct {
	cfg Config
}

// Name identifies the analyzer in logs and provenance.
func (a *FinancialAnalyzer) Name() string { return "financial" }

// Analyze emits a financial point for negative revenue growth and an
// operational point for negative margin trend.
func (a *FinancialAnalyzer) Analyze(in Inputs) []PainDataPoint {
	var points []PainDataPoint

	if a.cfg.Sources.FinancialTrends && a.cfg.Methods.GrowthContraction &&
		in.Bundle.FinancialTrends != nil && in.Bundle.FinancialTrends.RevenueGrowthPct != nil {
		growth := *in.Bundle.FinancialTrends.RevenueGrowthPct
		if growth < 0 {
			// Quarterly-normalized: a full year of contraction spread over 4 quarters.
			impact := in.Revenue * math.Abs(growth) / 100 / 4
			if impact > 0 {
				points = append(points, PainDataPoint{
					Source:           "financial_trends",
					Type:             PainFinancial,
					Description:      fmt.Sprintf("Revenue contracting %.1f%% annually", math.Abs(growth)),
					QuantifiedImpact: impact,
					Confidence:       0.85,
					Urgency:          UrgencyQuarterly,
					Evidence: []string{
						fmt.Sprintf("Reported revenue growth of %.1f%%", growth),
					},
				})
			}
		}
	}

	if a.cfg.Sources.OperationalMetrics && a.cfg.Methods.MarginErosion &&
		in.Bundle.OperationalMetrics != nil && in.Bundle.OperationalMetrics.MarginTrendPct != nil {
		margin := *in.Bundle.OperationalMetrics.MarginTrendPct
		if margin < 0 {
			impact := in.Revenue * math.Abs(margin) / 100
			if impact > 0 {
				points = append(points, PainDataPoint{
					Source:           "operational_metrics",
					Type:             PainOperational,
					Description:      fmt.Sprintf("Margins eroding %.1f%%", math.Abs(margin)),
					QuantifiedImpact: impact,
					Confidence:       0.8,
					Urgency:          UrgencyImmediate,
					Evidence: []string{
						fmt.Sprintf("Margin trend of %.1f%%", margin),
					},
				})
			}
		}
	}

	return points
}
