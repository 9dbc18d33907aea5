package pain

// urgencyWeights maps each urgency bucket to its 0-100 weight.
var urgencyWeights = map[Urgency]float64{
	UrgencyImmediate: 100,
	UrgencyQuarterly: 75,
	UrgencyAnnual:    50,
	UrgencyStrategic: 25,
}

// urgencyImpactReference is the dollar figure against which a point's impact
// factor saturates. Fixed regardless of company size; known to understate
// urgency for very large enterprises.
const urgencyImpactReference = 1_000_000.0

// UrgencyScore blends timeframe weight, dollar magnitude and confidence
// across all pain points into a 0-100 scalar. An empty point set scores 0.
func UrgencyScore(points []PainDataPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	total := 0.0
	for _, point := range points {
		impactFactor := min(point.QuantifiedImpact/urgencyImpactReference, 1)
		total += urgencyWeights[point.Urgency] * impactFactor * point.Confidence
	}
	return min(total/float64(len(points)), 100)
}
