package database

import (
	"time"

	"github.com/lib/pq"
)

// Company is the CRM record the engine scores against.
//
// Key Fields:
//   - EmployeeBucket: categorical size bucket ("1-10" ... "1000+") driving the
//     assumed revenue baseline
//   - TechStack: technology names used for stack-age estimation
//   - AnnualRevenue: explicit revenue override; 0 means unknown
//   - NextReviewDate: when the latest assessment goes stale and the review
//     scheduler picks the company up again
type Company struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	EmployeeBucket string         `gorm:"size:16;index" json:"employee_bucket"`
	TechStack      pq.StringArray `gorm:"type:text[]" json:"tech_stack"`
	AnnualRevenue  float64        `gorm:"type:decimal(20,2)" json:"annual_revenue"`
	NextReviewDate *time.Time     `gorm:"index" json:"next_review_date,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName specifies the table name for Company
func (Company) TableName() string {
	return "companies"
}

// EnrichedProfile is one person profile from the enrichment service. Only
// the title feeds the engine's hiring-pattern detection.
type EnrichedProfile struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID  string    `gorm:"size:64;index;not null" json:"company_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	FullName   string    `gorm:"size:255" json:"full_name,omitempty"`
	EnrichedAt time.Time `gorm:"index" json:"enriched_at"`
}

// TableName specifies the table name for EnrichedProfile
func (EnrichedProfile) TableName() string {
	return "enriched_profiles"
}

// OpportunitySignal is one typed event from the opportunity-signal feed,
// e.g. competitive_activity.
type OpportunitySignal struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID  string    `gorm:"size:64;index;not null" json:"company_id"`
	Type       string    `gorm:"size:64;index;not null" json:"type"`
	OccurredAt time.Time `gorm:"index" json:"occurred_at"`
}

// TableName specifies the table name for OpportunitySignal
func (OpportunitySignal) TableName() string {
	return "opportunity_signals"
}

// AltDataSnapshot is the latest alternative-data pull for a company. Nil
// columns mean the aggregator had no signal, which the engine treats as
// silence rather than zero.
type AltDataSnapshot struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID           string    `gorm:"size:64;index;not null" json:"company_id"`
	RevenueGrowthPct    *float64  `gorm:"type:decimal(10,4)" json:"revenue_growth_pct,omitempty"`
	MarginTrendPct      *float64  `gorm:"type:decimal(10,4)" json:"margin_trend_pct,omitempty"`
	OpsMarginTrendPct   *float64  `gorm:"type:decimal(10,4)" json:"ops_margin_trend_pct,omitempty"`
	RegulatoryRiskScore *float64  `gorm:"type:decimal(5,2)" json:"regulatory_risk_score,omitempty"`
	CapturedAt          time.Time `gorm:"index" json:"captured_at"`
}

// TableName specifies the table name for AltDataSnapshot
func (AltDataSnapshot) TableName() string {
	return "alt_data_snapshots"
}

// PainAssessment is one persisted engine run for a company. Pain points are
// stored as JSONB payloads; the scalar columns are denormalized for the
// dashboard aggregate queries.
//
// Key Fields:
//   - IsLatest: exactly one latest assessment per company
//   - CriticalCount: number of points at or above the critical threshold
//   - NextReviewDate: drives the re-score scheduler
type PainAssessment struct {
	ID                      string    `gorm:"primaryKey;size:36" json:"id"` // uuid
	CompanyID               string    `gorm:"size:64;index;not null" json:"company_id"`
	CompanyName             string    `gorm:"size:255" json:"company_name"`
	TotalQuantifiedPain     float64   `gorm:"type:decimal(20,2);not null" json:"total_quantified_pain"`
	RevenueLoss             float64   `gorm:"type:decimal(20,2)" json:"revenue_loss"`
	CostInefficiency        float64   `gorm:"type:decimal(20,2)" json:"cost_inefficiency"`
	OpportunityCost         float64   `gorm:"type:decimal(20,2)" json:"opportunity_cost"`
	ComplianceRisk          float64   `gorm:"type:decimal(20,2)" json:"compliance_risk"`
	CompetitiveDisadvantage float64   `gorm:"type:decimal(20,2)" json:"competitive_disadvantage"`
	UrgencyScore            float64   `gorm:"type:decimal(5,2)" json:"urgency_score"`
	Confidence              float64   `gorm:"type:decimal(5,4)" json:"confidence"`
	CriticalCount           int       `gorm:"index" json:"critical_count"`
	PainPoints              []byte    `gorm:"type:jsonb" json:"pain_points"`
	CriticalPainPoints      []byte    `gorm:"type:jsonb" json:"critical_pain_points"`
	Summary                 string    `gorm:"type:text" json:"summary"`
	IsLatest                bool      `gorm:"index" json:"is_latest"`
	LastUpdated             time.Time `gorm:"index;not null" json:"last_updated"`
	NextReviewDate          time.Time `gorm:"index;not null" json:"next_review_date"`
}

// TableName specifies the table name for PainAssessment
func (PainAssessment) TableName() string {
	return "pain_assessments"
}
