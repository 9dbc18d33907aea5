package database

import (
	"fmt"
	"time"
)

// Dashboard-specific data structures

// TierCount is one row of the pain-tier distribution across the book.
type TierCount struct {
	Tier  string `json:"tier"` // CRITICAL, HIGH, MODERATE, LOW
	Count int    `json:"count"`
}

// CategoryTotals aggregates category pain across all latest assessments.
type CategoryTotals struct {
	RevenueLoss             float64 `json:"revenue_loss"`
	CostInefficiency        float64 `json:"cost_inefficiency"`
	OpportunityCost         float64 `json:"opportunity_cost"`
	ComplianceRisk          float64 `json:"compliance_risk"`
	CompetitiveDisadvantage float64 `json:"competitive_disadvantage"`
	TotalQuantifiedPain     float64 `json:"total_quantified_pain"`
	Companies               int     `json:"companies"`
}

// Dashboard Query Methods

// GetPainTierDistribution buckets the latest assessments into summary tiers
func (s *StatsDB) GetPainTierDistribution() ([]TierCount, error) {
	query := `
		SELECT
			CASE
				WHEN total_quantified_pain > 5000000 THEN 'CRITICAL'
				WHEN total_quantified_pain > 1000000 THEN 'HIGH'
				WHEN total_quantified_pain > 250000 THEN 'MODERATE'
				ELSE 'LOW'
			END AS tier,
			COUNT(*) AS count
		FROM pain_assessments
		WHERE is_latest
		GROUP BY tier
		ORDER BY MIN(total_quantified_pain) DESC
	`

	rows, err := s.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("GetPainTierDistribution: %w", err)
	}
	defer rows.Close()

	var distribution []TierCount
	for rows.Next() {
		var tc TierCount
		if err := rows.Scan(&tc.Tier, &tc.Count); err != nil {
			return nil, fmt.Errorf("GetPainTierDistribution scan: %w", err)
		}
		distribution = append(distribution, tc)
	}
	return distribution, rows.Err()
}

// GetCategoryTotals sums category pain across all latest assessments
func (s *StatsDB) GetCategoryTotals() (*CategoryTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(revenue_loss), 0),
			COALESCE(SUM(cost_inefficiency), 0),
			COALESCE(SUM(opportunity_cost), 0),
			COALESCE(SUM(compliance_risk), 0),
			COALESCE(SUM(competitive_disadvantage), 0),
			COALESCE(SUM(total_quantified_pain), 0),
			COUNT(*)
		FROM pain_assessments
		WHERE is_latest
	`

	var totals CategoryTotals
	err := s.conn.QueryRow(query).Scan(
		&totals.RevenueLoss,
		&totals.CostInefficiency,
		&totals.OpportunityCost,
		&totals.ComplianceRisk,
		&totals.CompetitiveDisadvantage,
		&totals.TotalQuantifiedPain,
		&totals.Companies,
	)
	if err != nil {
		return nil, fmt.Errorf("GetCategoryTotals: %w", err)
	}
	return &totals, nil
}

// GetDueReviewCount counts companies whose assessments have gone stale
func (s *StatsDB) GetDueReviewCount(now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM companies
		WHERE next_review_date IS NULL OR next_review_date <= $1
	`

	var count int
	if err := s.conn.QueryRow(query, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("GetDueReviewCount: %w", err)
	}
	return count, nil
}

// GetUrgencyLeaders returns the companies with the highest urgency scores
func (s *StatsDB) GetUrgencyLeaders(limit int) ([]PainAssessment, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, company_id, company_name, total_quantified_pain,
		       urgency_score, confidence, critical_count, last_updated, next_review_date
		FROM pain_assessments
		WHERE is_latest
		ORDER BY urgency_score DESC, total_quantified_pain DESC
		LIMIT $1
	`

	rows, err := s.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("GetUrgencyLeaders: %w", err)
	}
	defer rows.Close()

	var leaders []PainAssessment
	for rows.Next() {
		var a PainAssessment
		err := rows.Scan(&a.ID, &a.CompanyID, &a.CompanyName, &a.TotalQuantifiedPain,
			&a.UrgencyScore, &a.Confidence, &a.CriticalCount, &a.LastUpdated, &a.NextReviewDate)
		if err != nil {
			return nil, fmt.Errorf("GetUrgencyLeaders scan: %w", err)
		}
		leaders = append(leaders, a)
	}
	return leaders, rows.Err()
}
