package pain

import "time"

// PainType classifies which slice of a company's business a pain point hits.
type PainType string

const (
	PainFinancial   PainType = "financial"
	PainOperational PainType = "operational"
	PainCompetitive PainType = "competitive"
	PainRegulatory  PainType = "regulatory"
	PainStrategic   PainType = "strategic"
)

// Urgency is the timeframe within which a pain point demands action.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyQuarterly Urgency = "quarterly"
	UrgencyAnnual    Urgency = "annual"
	UrgencyStrategic Urgency = "strategic"
)

// CompanyBaseline is the minimal company record the engine scores against.
// EmployeeBucket drives the assumed revenue baseline unless AnnualRevenue
// carries an explicit override (> 0). Immutable per invocation.
type CompanyBaseline struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	EmployeeBucket string   `json:"employee_bucket"` // "1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"
	TechStack      []string `json:"tech_stack"`
	AnnualRevenue  float64  `json:"annual_revenue,omitempty"` // explicit override, 0 = unknown
}

// ProfileRecord is one enriched person profile. Only the title matters to the
// engine; hiring-pattern detection is substring matching on it.
type ProfileRecord struct {
	Title string `json:"title"`
}

// FinancialTrends carries growth and margin movement from the alt-data
// aggregator. Nil fields mean "no signal", never zero.
type FinancialTrends struct {
	RevenueGrowthPct *float64 `json:"revenue_growth_pct,omitempty"`
	MarginTrendPct   *float64 `json:"margin_trend_pct,omitempty"`
}

// OperationalMetrics overlaps with FinancialTrends on margin trend but is
// sourced independently and treated as its own signal.
type OperationalMetrics struct {
	MarginTrendPct *float64 `json:"margin_trend_pct,omitempty"`
}

// RegulatoryIntelligence is the compliance-risk slice of alt data.
type RegulatoryIntelligence struct {
	RiskScore *float64 `json:"risk_score,omitempty"` // 0-100
}

// SignalBundle aggregates the heterogeneous alt-data slices for one company.
// Any member may be nil; absence simply means the matching analyzer emits
// nothing.
type SignalBundle struct {
	FinancialTrends        *FinancialTrends        `json:"financial_trends,omitempty"`
	OperationalMetrics     *OperationalMetrics     `json:"operational_metrics,omitempty"`
	RegulatoryIntelligence *RegulatoryIntelligence `json:"regulatory_intelligence,omitempty"`
}

// SignalEvent is one typed event from the opportunity-signal feed.
type SignalEvent struct {
	Type string `json:"type"` // e.g. "competitive_activity"
}

// PainDataPoint is a single quantified business problem inferred from one
// signal source. Analyzers never emit zero-impact points.
type PainDataPoint struct {
	Source           string   `json:"source"`
	Type             PainType `json:"type"`
	Description      string   `json:"description"`
	QuantifiedImpact float64  `json:"quantified_impact"` // USD, always >= 0
	Confidence       float64  `json:"confidence"`        // 0-1
	Urgency          Urgency  `json:"urgency"`
	Evidence         []string `json:"evidence"`
}

// PainCategories buckets pain point impacts by business category. Each
// PainType maps to exactly one bucket, so the bucket sum equals the sum of
// all individual point impacts.
type PainCategories struct {
	RevenueLoss             float64 `json:"revenue_loss"`
	CostInefficiency        float64 `json:"cost_inefficiency"`
	OpportunityCost         float64 `json:"opportunity_cost"`
	ComplianceRisk          float64 `json:"compliance_risk"`
	CompetitiveDisadvantage float64 `json:"competitive_disadvantage"`
}

// Total sums the five category buckets.
func (c PainCategories) Total() float64 {
	return c.RevenueLoss + c.CostInefficiency + c.OpportunityCost +
		c.ComplianceRisk + c.CompetitiveDisadvantage
}

// QuantifiedPain is the full scoring result for one company, produced fresh
// on each Quantify call.
type QuantifiedPain struct {
	CompanyID           string          `json:"company_id"`
	CompanyName         string          `json:"company_name"`
	TotalQuantifiedPain float64         `json:"total_quantified_pain"`
	PainCategories      PainCategories  `json:"pain_categories"`
	CriticalPainPoints  []PainDataPoint `json:"critical_pain_points"`
	PainPoints          []PainDataPoint `json:"pain_points"`
	UrgencyScore        float64         `json:"urgency_score"` // 0-100
	Confidence          float64         `json:"confidence"`    // 0-1
	LastUpdated         time.Time       `json:"last_updated"`
	NextReviewDate      time.Time       `json:"next_review_date"` // LastUpdated + 30 days
}

// ReviewInterval is how long a scoring run stays fresh before the caller
// should schedule a re-score.
const ReviewInterval = 30 * 24 * time.Hour
