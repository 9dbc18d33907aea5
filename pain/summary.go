package pain

import (
	"fmt"

	"prospect-pain-engine/helpers"
)

// Summary tier boundaries in USD.
const (
	tierCritical = 5_000_000.0
	tierHigh     = 1_000_000.0
	tierModerate = 250_000.0
)

// Summarize produces a one-line tier label for a scoring result. Pure
// formatting, no side effects.
func Summarize(result QuantifiedPain) string {
	total := result.TotalQuantifiedPain
	switch {
	case total > tierCritical:
		if top := topCriticalPoint(result); top != nil {
			return fmt.Sprintf("CRITICAL: %s total quantified pain, led by %s",
				helpers.FormatUSD(total), top.Description)
		}
		return fmt.Sprintf("CRITICAL: %s total quantified pain", helpers.FormatUSD(total))
	case total > tierHigh:
		return fmt.Sprintf("HIGH: %s total quantified pain", helpers.FormatUSD(total))
	case total > tierModerate:
		return fmt.Sprintf("MODERATE: %s total quantified pain", helpers.FormatUSD(total))
	default:
		return fmt.Sprintf("LOW: %s total quantified pain", helpers.FormatUSD(total))
	}
}

// topCriticalPoint picks the highest-impact critical point, falling back to
// the highest-impact point overall when many mid-size points push the total
// over the critical tier without any single point crossing the threshold.
func topCriticalPoint(result QuantifiedPain) *PainDataPoint {
	candidates := result.CriticalPainPoints
	if len(candidates) == 0 {
		candidates = result.PainPoints
	}
	if len(candidates) == 0 {
		return nil
	}

	top := candidates[0]
	for _, point := range candidates[1:] {
		if point.QuantifiedImpact > top.QuantifiedImpact {
			top = point
		}
	}
	return &top
}
