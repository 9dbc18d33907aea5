package pain

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 {
	return &v
}

// scoringTime keeps age calculations stable across test runs.
var scoringTime = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func engineerProfiles(n int) []ProfileRecord {
	profiles := make([]ProfileRecord, 0, n)
	for i := 0; i < n; i++ {
		profiles = append(profiles, ProfileRecord{Title: "Software Engineer"})
	}
	return profiles
}

func executiveProfiles() []ProfileRecord {
	return []ProfileRecord{
		{Title: "VP of Sales"},
		{Title: "VP of Marketing"},
		{Title: "Director of Operations"},
		{Title: "Chief Revenue Officer"},
	}
}

// fullScenario mirrors a distressed mid-size enterprise: contracting
// revenue, aged stack, hiring surge, competitive pressure, regulatory heat
// and a leadership build-out all at once.
func fullScenario() (CompanyBaseline, []ProfileRecord, SignalBundle, []SignalEvent) {
	company := CompanyBaseline{
		ID:             "acme-1",
		Name:           "Acme Corp",
		EmployeeBucket: "501-1000",
		TechStack:      []string{"jquery", "angular"},
	}
	profiles := append(engineerProfiles(15), executiveProfiles()...)
	bundle := SignalBundle{
		FinancialTrends:        &FinancialTrends{RevenueGrowthPct: floatPtr(-10)},
		RegulatoryIntelligence: &RegulatoryIntelligence{RiskScore: floatPtr(85)},
	}
	signals := []SignalEvent{
		{Type: "competitive_activity"},
		{Type: "competitive_activity"},
		{Type: "competitive_activity"},
	}
	return company, profiles, bundle, signals
}

func TestQuantifyFullScenario(t *testing.T) {
	engine := New(DefaultConfig())
	company, profiles, bundle, signals := fullScenario()

	result := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)

	categories := result.PainCategories
	if categories.RevenueLoss <= 0 {
		t.Errorf("expected revenue loss, got %f", categories.RevenueLoss)
	}
	if categories.CostInefficiency <= 0 {
		t.Errorf("expected cost inefficiency, got %f", categories.CostInefficiency)
	}
	if categories.OpportunityCost <= 0 {
		t.Errorf("expected opportunity cost, got %f", categories.OpportunityCost)
	}
	if categories.ComplianceRisk <= 0 {
		t.Errorf("expected compliance risk, got %f", categories.ComplianceRisk)
	}
	if categories.CompetitiveDisadvantage <= 0 {
		t.Errorf("expected competitive disadvantage, got %f", categories.CompetitiveDisadvantage)
	}

	if result.TotalQuantifiedPain < 50_000_000 {
		t.Errorf("expected total pain in the tens of millions, got %f", result.TotalQuantifiedPain)
	}
	if len(result.CriticalPainPoints) == 0 {
		t.Error("expected at least one critical pain point")
	}
	if result.UrgencyScore <= 50 {
		t.Errorf("expected urgency score > 50, got %f", result.UrgencyScore)
	}
}

func TestQuantifyScenarioImpacts(t *testing.T) {
	// Hand-computed against a $500M baseline
	engine := New(DefaultConfig())
	company, profiles, bundle, signals := fullScenario()

	result := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)

	const epsilon = 1e-6
	expected := map[string]float64{
		"revenue_loss":             12_500_000,             // 500M * 10% / 4
		"compliance_risk":          42_500_000,             // 500M * 85/1000
		"opportunity_cost":         40_000_000,             // 500M * 4 execs * 2%
		"competitive_disadvantage": 15_000_000,             // 500M * 3 events * 1%
		"cost_inefficiency":        75_000_000 + 7_500_000, // aged stack capped at 15% + 15 engineers
	}
	got := map[string]float64{
		"revenue_loss":             result.PainCategories.RevenueLoss,
		"compliance_risk":          result.PainCategories.ComplianceRisk,
		"opportunity_cost":         result.PainCategories.OpportunityCost,
		"competitive_disadvantage": result.PainCategories.CompetitiveDisadvantage,
		"cost_inefficiency":        result.PainCategories.CostInefficiency,
	}
	for category, want := range expected {
		if math.Abs(got[category]-want) > epsilon {
			t.Errorf("%s: expected %f, got %f", category, want, got[category])
		}
	}
}

func TestQuantifyZeroSignalCompany(t *testing.T) {
	engine := New(DefaultConfig())
	company := CompanyBaseline{
		ID:             "calm-1",
		Name:           "Calm Inc",
		EmployeeBucket: "51-200",
		// Unknown technologies count as 3 years old, keeping the stack young
		TechStack: []string{"quantumdb", "hyperlang"},
	}
	profiles := append(engineerProfiles(5), ProfileRecord{Title: "VP of Sales"})
	bundle := SignalBundle{
		FinancialTrends:        &FinancialTrends{RevenueGrowthPct: floatPtr(12)},
		RegulatoryIntelligence: &RegulatoryIntelligence{RiskScore: floatPtr(40)},
	}

	result := engine.QuantifyAt(company, profiles, bundle, nil, scoringTime)

	if result.TotalQuantifiedPain != 0 {
		t.Errorf("expected zero total pain, got %f", result.TotalQuantifiedPain)
	}
	if result.UrgencyScore != 0 {
		t.Errorf("expected zero urgency, got %f", result.UrgencyScore)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
	if len(result.PainPoints) != 0 {
		t.Errorf("expected no pain points, got %d", len(result.PainPoints))
	}
}

func TestQuantifyEmptyInputs(t *testing.T) {
	engine := New(DefaultConfig())

	result := engine.QuantifyAt(CompanyBaseline{ID: "empty-1"}, nil, SignalBundle{}, nil, scoringTime)

	if result.TotalQuantifiedPain != 0 || result.UrgencyScore != 0 || result.Confidence != 0 {
		t.Errorf("expected all-zero result, got total=%f urgency=%f confidence=%f",
			result.TotalQuantifiedPain, result.UrgencyScore, result.Confidence)
	}
	if result.CompanyID != "empty-1" {
		t.Errorf("expected company id carried through, got %q", result.CompanyID)
	}
}

func TestQuantifyConservation(t *testing.T) {
	engine := New(DefaultConfig())
	company, profiles, bundle, signals := fullScenario()

	result := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)

	pointSum := 0.0
	for _, point := range result.PainPoints {
		pointSum += point.QuantifiedImpact
	}

	if math.Abs(result.PainCategories.Total()-result.TotalQuantifiedPain) > 1e-6 {
		t.Errorf("category total %f != total %f", result.PainCategories.Total(), result.TotalQuantifiedPain)
	}
	if math.Abs(pointSum-result.TotalQuantifiedPain) > 1e-6 {
		t.Errorf("point sum %f != total %f", pointSum, result.TotalQuantifiedPain)
	}
}

func TestQuantifyCriticalSubset(t *testing.T) {
	engine := New(DefaultConfig())
	company, profiles, bundle, signals := fullScenario()

	result := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)

	threshold := engine.Config().Thresholds.CriticalPain
	for _, point := range result.CriticalPainPoints {
		if point.QuantifiedImpact < threshold {
			t.Errorf("critical point %q below threshold: %f", point.Description, point.QuantifiedImpact)
		}
	}

	below := 0
	for _, point := range result.PainPoints {
		if point.QuantifiedImpact >= threshold {
			below++
		}
	}
	if below != len(result.CriticalPainPoints) {
		t.Errorf("expected %d critical points, got %d", below, len(result.CriticalPainPoints))
	}
}

func TestQuantifyNonNegativity(t *testing.T) {
	engine := New(DefaultConfig())

	inputs := []struct {
		name    string
		company CompanyBaseline
		bundle  SignalBundle
	}{
		{
			name:    "severe contraction",
			company: CompanyBaseline{ID: "a", EmployeeBucket: "1000+"},
			bundle:  SignalBundle{FinancialTrends: &FinancialTrends{RevenueGrowthPct: floatPtr(-90)}},
		},
		{
			name:    "extreme margin erosion",
			company: CompanyBaseline{ID: "b", EmployeeBucket: "1-10"},
			bundle:  SignalBundle{OperationalMetrics: &OperationalMetrics{MarginTrendPct: floatPtr(-50)}},
		},
		{
			name:    "max regulatory risk",
			company: CompanyBaseline{ID: "c", EmployeeBucket: "201-500"},
			bundle:  SignalBundle{RegulatoryIntelligence: &RegulatoryIntelligence{RiskScore: floatPtr(100)}},
		},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.QuantifyAt(tt.company, nil, tt.bundle, nil, scoringTime)

			categories := []float64{
				result.PainCategories.RevenueLoss,
				result.PainCategories.CostInefficiency,
				result.PainCategories.OpportunityCost,
				result.PainCategories.ComplianceRisk,
				result.PainCategories.CompetitiveDisadvantage,
			}
			for i, value := range categories {
				if value < 0 {
					t.Errorf("category %d negative: %f", i, value)
				}
			}
			if result.UrgencyScore < 0 || result.UrgencyScore > 100 {
				t.Errorf("urgency out of range: %f", result.UrgencyScore)
			}
			if result.Confidence < 0 || result.Confidence > 1 {
				t.Errorf("confidence out of range: %f", result.Confidence)
			}
		})
	}
}

func TestQuantifyDeterminism(t *testing.T) {
	engine := New(DefaultConfig())
	company, profiles, bundle, signals := fullScenario()

	first := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)
	second := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs with the same reference time produced different results")
	}
	if !first.NextReviewDate.Equal(first.LastUpdated.Add(ReviewInterval)) {
		t.Errorf("next review date %v is not 30 days after %v", first.NextReviewDate, first.LastUpdated)
	}
}

func TestQuantifyMonotonicScale(t *testing.T) {
	engine := New(DefaultConfig())
	buckets := []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}

	previous := -1.0
	for _, bucket := range buckets {
		company, profiles, bundle, signals := fullScenario()
		company.EmployeeBucket = bucket

		result := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)
		if result.TotalQuantifiedPain <= previous {
			t.Errorf("bucket %s: total %f not greater than smaller bucket's %f",
				bucket, result.TotalQuantifiedPain, previous)
		}
		previous = result.TotalQuantifiedPain
	}
}

func TestQuantifyRevenueOverride(t *testing.T) {
	engine := New(DefaultConfig())
	company, profiles, bundle, signals := fullScenario()
	company.AnnualRevenue = 1_000_000_000 // double the bucket baseline

	baseline := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)
	company.AnnualRevenue = 0
	bucketed := engine.QuantifyAt(company, profiles, bundle, signals, scoringTime)

	if math.Abs(baseline.TotalQuantifiedPain-2*bucketed.TotalQuantifiedPain) > 1e-6 {
		t.Errorf("override total %f is not double the bucket total %f",
			baseline.TotalQuantifiedPain, bucketed.TotalQuantifiedPain)
	}
}
