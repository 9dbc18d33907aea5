package pain

// Source-variety bonus parameters: each distinct source adds 0.1, capped at
// 0.3, on top of the average point confidence.
const (
	varietyBonusPerSource = 0.1
	varietyBonusCap       = 0.3
)

// ConfidenceScore reflects average point certainty plus a bonus for source
// diversity, capped at 1. An empty point set scores 0.
func ConfidenceScore(points []PainDataPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	totalConfidence := 0.0
	sources := make(map[string]bool)
	for _, point := range points {
		totalConfidence += point.Confidence
		sources[point.Source] = true
	}

	avgConfidence := totalConfidence / float64(len(points))
	varietyBonus := min(float64(len(sources))*varietyBonusPerSource, varietyBonusCap)
	return min(avgConfidence+varietyBonus, 1)
}
