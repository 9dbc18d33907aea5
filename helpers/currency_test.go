package helpers

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "$0"},
		{name: "under a thousand", amount: 950, want: "$950"},
		{name: "thousands", amount: 50_000, want: "$50,000"},
		{name: "hundreds of thousands", amount: 250_000, want: "$250,000"},
		{name: "millions", amount: 1_250_000, want: "$1,250,000"},
		{name: "billions", amount: 2_000_000_000, want: "$2,000,000,000"},
		{name: "cents truncated", amount: 1_000_000.75, want: "$1,000,000"},
		{name: "negative", amount: -42_500, want: "-$42,500"},
		{name: "negative under a thousand", amount: -7, want: "-$7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUSD(tt.amount)
			if got != tt.want {
				t.Errorf("FormatUSD(%f) = %s, expected %s", tt.amount, got, tt.want)
			}
		})
	}
}
