package pain

// Categorize buckets pain points into the five business categories. Every
// point maps to exactly one bucket, so the bucket sum always equals the sum
// of the individual impacts.
func Categorize(points []PainDataPoint) PainCategories {
	var categories PainCategories
	for _, point := range points {
		switch point.Type {
		case PainFinancial:
			categories.RevenueLoss += point.QuantifiedImpact
		case PainOperational:
			categories.CostInefficiency += point.QuantifiedImpact
		case PainStrategic:
			categories.OpportunityCost += point.QuantifiedImpact
		case PainRegulatory:
			categories.ComplianceRisk += point.QuantifiedImpact
		case PainCompetitive:
			categories.CompetitiveDisadvantage += point.QuantifiedImpact
		}
	}
	return categories
}

// CriticalPoints filters points at or above the critical threshold,
// preserving emission order. No implicit re-sort: the analyzer registry
// order is the ranking contract.
func CriticalPoints(points []PainDataPoint, criticalThreshold float64) []PainDataPoint {
	critical := make([]PainDataPoint, 0)
	for _, point := range points {
		if point.QuantifiedImpact >= criticalThreshold {
			critical = append(critical, point)
		}
	}
	return critical
}
