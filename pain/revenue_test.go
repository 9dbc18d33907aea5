package pain

import "testing"

func TestEstimateAnnualRevenue(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name    string
		company CompanyBaseline
		want    float64
	}{
		{
			name:    "smallest bucket",
			company: CompanyBaseline{EmployeeBucket: "1-10"},
			want:    1_000_000,
		},
		{
			name:    "mid bucket",
			company: CompanyBaseline{EmployeeBucket: "201-500"},
			want:    100_000_000,
		},
		{
			name:    "largest bucket",
			company: CompanyBaseline{EmployeeBucket: "1000+"},
			want:    2_000_000_000,
		},
		{
			name:    "unknown bucket falls back to default tier",
			company: CompanyBaseline{EmployeeBucket: "lots"},
			want:    20_000_000,
		},
		{
			name:    "missing bucket falls back to default tier",
			company: CompanyBaseline{},
			want:    20_000_000,
		},
		{
			name:    "explicit revenue overrides bucket",
			company: CompanyBaseline{EmployeeBucket: "1-10", AnnualRevenue: 750_000_000},
			want:    750_000_000,
		},
		{
			name:    "zero revenue is treated as unknown",
			company: CompanyBaseline{EmployeeBucket: "11-50", AnnualRevenue: 0},
			want:    5_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.EstimateAnnualRevenue(tt.company)
			if got != tt.want {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestTechAgeYears(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name          string
		tech          string
		referenceYear int
		want          int
	}{
		{name: "known technology", tech: "jquery", referenceYear: 2026, want: 20},
		{name: "case insensitive", tech: "React", referenceYear: 2026, want: 13},
		{name: "whitespace trimmed", tech: "  vue  ", referenceYear: 2026, want: 12},
		{name: "unknown technology uses default age", tech: "quantumdb", referenceYear: 2026, want: DefaultTechAgeYears},
		{name: "future release clamps to zero", tech: "react", referenceYear: 2010, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.TechAgeYears(tt.tech, tt.referenceYear)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
