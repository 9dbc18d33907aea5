package pain

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		result     QuantifiedPain
		wantPrefix string
		wantAmount string
	}{
		{
			name: "critical tier names the lead point",
			result: QuantifiedPain{
				TotalQuantifiedPain: 12_000_000,
				CriticalPainPoints: []PainDataPoint{
					{Description: "Revenue contracting 10.0% annually", QuantifiedImpact: 4_000_000},
					{Description: "Elevated regulatory risk (score 85/100)", QuantifiedImpact: 8_000_000},
				},
			},
			wantPrefix: "CRITICAL:",
			wantAmount: "$12,000,000",
		},
		{
			name: "high tier",
			result: QuantifiedPain{
				TotalQuantifiedPain: 2_500_000,
			},
			wantPrefix: "HIGH:",
			wantAmount: "$2,500,000",
		},
		{
			name: "moderate tier",
			result: QuantifiedPain{
				TotalQuantifiedPain: 600_000,
			},
			wantPrefix: "MODERATE:",
			wantAmount: "$600,000",
		},
		{
			name: "low tier",
			result: QuantifiedPain{
				TotalQuantifiedPain: 100_000,
			},
			wantPrefix: "LOW:",
			wantAmount: "$100,000",
		},
		{
			name:       "zero pain",
			result:     QuantifiedPain{},
			wantPrefix: "LOW:",
			wantAmount: "$0",
		},
		{
			name: "exactly at high boundary stays high",
			result: QuantifiedPain{
				TotalQuantifiedPain: 5_000_000,
			},
			wantPrefix: "HIGH:",
			wantAmount: "$5,000,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.result)
			if !strings.HasPrefix(summary, tt.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, summary)
			}
			if !strings.Contains(summary, tt.wantAmount) {
				t.Errorf("expected amount %q in %q", tt.wantAmount, summary)
			}
		})
	}
}

func TestSummarizeLeadPoint(t *testing.T) {
	result := QuantifiedPain{
		TotalQuantifiedPain: 20_000_000,
		CriticalPainPoints: []PainDataPoint{
			{Description: "aged stack", QuantifiedImpact: 6_000_000},
			{Description: "regulatory exposure", QuantifiedImpact: 14_000_000},
		},
	}

	summary := Summarize(result)
	if !strings.Contains(summary, "led by regulatory exposure") {
		t.Errorf("expected the highest-impact point to lead, got %q", summary)
	}
}

func TestSummarizeCriticalWithoutCriticalPoints(t *testing.T) {
	// Many mid-size points can push the total over the critical tier
	// without any single point crossing the critical threshold.
	result := QuantifiedPain{
		TotalQuantifiedPain: 6_000_000,
		PainPoints: []PainDataPoint{
			{Description: "margin erosion", QuantifiedImpact: 3_500_000},
			{Description: "hiring surge", QuantifiedImpact: 2_500_000},
		},
	}

	summary := Summarize(result)
	if !strings.HasPrefix(summary, "CRITICAL:") {
		t.Errorf("expected critical tier, got %q", summary)
	}
	if !strings.Contains(summary, "led by margin erosion") {
		t.Errorf("expected fallback to highest-impact point, got %q", summary)
	}
}
