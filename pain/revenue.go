package pain

import "strings"

// Tables holds the lookup data every dollar estimate derives from. Both
// tables are plain data so deployments can swap them without code changes.
type Tables struct {
	// RevenueBySize maps an employee-count bucket to an assumed annual
	// revenue baseline in USD.
	RevenueBySize map[string]float64 `json:"revenue_by_size"`
	// TechReleaseYear maps a lowercase technology name to its initial
	// release year, used to estimate stack age.
	TechReleaseYear map[string]int `json:"tech_release_year"`
}

// DefaultBucket is the tier assumed when the employee bucket is missing or
// unrecognized.
const DefaultBucket = "51-200"

// DefaultTechAgeYears is the assumed age for technologies missing from the
// release-year table.
const DefaultTechAgeYears = 3

// DefaultTables returns the built-in revenue and technology tables.
func DefaultTables() Tables {
	return Tables{
		RevenueBySize: map[string]float64{
			"1-10":     1_000_000,
			"11-50":    5_000_000,
			"51-200":   20_000_000,
			"201-500":  100_000_000,
			"501-1000": 500_000_000,
			"1000+":    2_000_000_000,
		},
		TechReleaseYear: map[string]int{
			"jquery":    2006,
			"angular":   2010,
			"angularjs": 2010,
			"backbone":  2010,
			"knockout":  2010,
			"ember":     2011,
			"react":     2013,
			"vue":       2014,
			"svelte":    2016,
			"rails":     2004,
			"django":    2005,
			"spring":    2002,
			"laravel":   2011,
			"express":   2010,
			"flask":     2010,
		},
	}
}

// EstimateAnnualRevenue maps a company to its assumed annual revenue in USD.
// An explicit override on the record wins; otherwise the employee bucket
// selects a tier, falling back to the DefaultBucket tier. All downstream pain
// figures are relative-to-size estimates scaled from this number, not
// measured figures.
func (t Tables) EstimateAnnualRevenue(company CompanyBaseline) float64 {
	if company.AnnualRevenue > 0 {
		return company.AnnualRevenue
	}
	if revenue, ok := t.RevenueBySize[company.EmployeeBucket]; ok {
		return revenue
	}
	return t.RevenueBySize[DefaultBucket]
}

// TechAgeYears returns the estimated age of a technology at the reference
// year. Unknown technologies count as DefaultTechAgeYears old.
func (t Tables) TechAgeYears(tech string, referenceYear int) int {
	year, ok := t.TechReleaseYear[strings.ToLower(strings.TrimSpace(tech))]
	if !ok {
		return DefaultTechAgeYears
	}
	age := referenceYear - year
	if age < 0 {
		return 0
	}
	return age
}
