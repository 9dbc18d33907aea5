package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prospect-pain-engine/pain"
)

// Repository handles database operations for companies and assessments
type Repository struct {
	db *Database
}

// NewRepository creates a new repository
func NewRepository(db *Database) *Repository {
	return &Repository{db: db}
}

// InitSchema performs auto-migration for all tables
func (r *Repository) InitSchema() error {
	fmt.Println("🔄 Starting database schema initialization...")

	err := r.db.db.AutoMigrate(
		&Company{},
		&EnrichedProfile{},
		&OpportunitySignal{},
		&AltDataSnapshot{},
		&PainAssessment{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	fmt.Println("✅ Database schema initialized")
	return nil
}

// SaveCompany creates or updates a company record
func (r *Repository) SaveCompany(company *Company) error {
	if err := r.db.db.Save(company).Error; err != nil {
		return fmt.Errorf("SaveCompany: %w", err)
	}
	return nil
}

// GetCompany retrieves a company by ID, nil if not found
func (r *Repository) GetCompany(id string) (*Company, error) {
	var company Company
	err := r.db.db.First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCompany: %w", err)
	}
	return &company, nil
}

// LoadInputs materializes everything the engine needs for one company:
// the baseline record, enriched profiles, the latest alt-data snapshot and
// the opportunity-signal feed. Missing profiles, signals or alt data are not
// errors; the engine treats absence as silence.
func (r *Repository) LoadInputs(companyID string) (pain.CompanyBaseline, []pain.ProfileRecord, pain.SignalBundle, []pain.SignalEvent, error) {
	company, err := r.GetCompany(companyID)
	if err != nil {
		return pain.CompanyBaseline{}, nil, pain.SignalBundle{}, nil, err
	}
	if company == nil {
		return pain.CompanyBaseline{}, nil, pain.SignalBundle{}, nil,
			fmt.Errorf("LoadInputs: company %s not found", companyID)
	}

	baseline := pain.CompanyBaseline{
		ID:             company.ID,
		Name:           company.Name,
		EmployeeBucket: company.EmployeeBucket,
		TechStack:      company.TechStack,
		AnnualRevenue:  company.AnnualRevenue,
	}

	var profiles []EnrichedProfile
	if err := r.db.db.Where("company_id = ?", companyID).Order("enriched_at DESC").Find(&profiles).Error; err != nil {
		return baseline, nil, pain.SignalBundle{}, nil, fmt.Errorf("LoadInputs profiles: %w", err)
	}
	records := make([]pain.ProfileRecord, 0, len(profiles))
	for _, profile := range profiles {
		records = append(records, pain.ProfileRecord{Title: profile.Title})
	}

	var signals []OpportunitySignal
	if err := r.db.db.Where("company_id = ?", companyID).Order("occurred_at DESC").Find(&signals).Error; err != nil {
		return baseline, records, pain.SignalBundle{}, nil, fmt.Errorf("LoadInputs signals: %w", err)
	}
	events := make([]pain.SignalEvent, 0, len(signals))
	for _, signal := range signals {
		events = append(events, pain.SignalEvent{Type: signal.Type})
	}

	bundle := pain.SignalBundle{}
	var snapshot AltDataSnapshot
	err = r.db.db.Where("company_id = ?", companyID).Order("captured_at DESC").First(&snapshot).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return baseline, records, bundle, events, fmt.Errorf("LoadInputs alt data: %w", err)
	}
	if err == nil {
		if snapshot.RevenueGrowthPct != nil || snapshot.MarginTrendPct != nil {
			bundle.FinancialTrends = &pain.FinancialTrends{
				RevenueGrowthPct: snapshot.RevenueGrowthPct,
				MarginTrendPct:   snapshot.MarginTrendPct,
			}
		}
		if snapshot.OpsMarginTrendPct != nil {
			bundle.OperationalMetrics = &pain.OperationalMetrics{
				MarginTrendPct: snapshot.OpsMarginTrendPct,
			}
		}
		if snapshot.RegulatoryRiskScore != nil {
			bundle.RegulatoryIntelligence = &pain.RegulatoryIntelligence{
				RiskScore: snapshot.RegulatoryRiskScore,
			}
		}
	}

	return baseline, records, bundle, events, nil
}

// SaveAssessment persists an engine result as the company's latest
// assessment. Previous runs are kept as history with is_latest cleared, and
// the company's next_review_date is advanced in the same transaction.
func (r *Repository) SaveAssessment(result pain.QuantifiedPain, summary string) (*PainAssessment, error) {
	points, err := json.Marshal(result.PainPoints)
	if err != nil {
		return nil, fmt.Errorf("SaveAssessment: %w", err)
	}
	critical, err := json.Marshal(result.CriticalPainPoints)
	if err != nil {
		return nil, fmt.Errorf("SaveAssessment: %w", err)
	}

	assessment := &PainAssessment{
		ID:                      uuid.NewString(),
		CompanyID:               result.CompanyID,
		CompanyName:             result.CompanyName,
		TotalQuantifiedPain:     result.TotalQuantifiedPain,
		RevenueLoss:             result.PainCategories.RevenueLoss,
		CostInefficiency:        result.PainCategories.CostInefficiency,
		OpportunityCost:         result.PainCategories.OpportunityCost,
		ComplianceRisk:          result.PainCategories.ComplianceRisk,
		CompetitiveDisadvantage: result.PainCategories.CompetitiveDisadvantage,
		UrgencyScore:            result.UrgencyScore,
		Confidence:              result.Confidence,
		CriticalCount:           len(result.CriticalPainPoints),
		PainPoints:              points,
		CriticalPainPoints:      critical,
		Summary:                 summary,
		IsLatest:                true,
		LastUpdated:             result.LastUpdated,
		NextReviewDate:          result.NextReviewDate,
	}

	err = r.db.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&PainAssessment{}).
			Where("company_id = ? AND is_latest", result.CompanyID).
			Update("is_latest", false).Error; err != nil {
			return err
		}
		if err := tx.Create(assessment).Error; err != nil {
			return err
		}
		return tx.Model(&Company{}).
			Where("id = ?", result.CompanyID).
			Update("next_review_date", result.NextReviewDate).Error
	})
	if err != nil {
		return nil, fmt.Errorf("SaveAssessment: %w", err)
	}
	return assessment, nil
}

// Result reconstructs the engine output from a stored assessment row,
// unpacking the JSONB pain point payloads.
func (a *PainAssessment) Result() (pain.QuantifiedPain, error) {
	result := pain.QuantifiedPain{
		CompanyID:           a.CompanyID,
		CompanyName:         a.CompanyName,
		TotalQuantifiedPain: a.TotalQuantifiedPain,
		PainCategories: pain.PainCategories{
			RevenueLoss:             a.RevenueLoss,
			CostInefficiency:        a.CostInefficiency,
			OpportunityCost:         a.OpportunityCost,
			ComplianceRisk:          a.ComplianceRisk,
			CompetitiveDisadvantage: a.CompetitiveDisadvantage,
		},
		UrgencyScore:   a.UrgencyScore,
		Confidence:     a.Confidence,
		LastUpdated:    a.LastUpdated,
		NextReviewDate: a.NextReviewDate,
	}
	if len(a.PainPoints) > 0 {
		if err := json.Unmarshal(a.PainPoints, &result.PainPoints); err != nil {
			return result, fmt.Errorf("Result pain points: %w", err)
		}
	}
	if len(a.CriticalPainPoints) > 0 {
		if err := json.Unmarshal(a.CriticalPainPoints, &result.CriticalPainPoints); err != nil {
			return result, fmt.Errorf("Result critical points: %w", err)
		}
	}
	return result, nil
}

// GetLatestAssessment retrieves the latest assessment for a company, nil if
// the company has never been scored
func (r *Repository) GetLatestAssessment(companyID string) (*PainAssessment, error) {
	var assessment PainAssessment
	err := r.db.db.Where("company_id = ? AND is_latest", companyID).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetLatestAssessment: %w", err)
	}
	return &assessment, nil
}

// GetAssessmentHistory retrieves past assessments for a company, newest first
func (r *Repository) GetAssessmentHistory(companyID string, limit int) ([]PainAssessment, error) {
	var assessments []PainAssessment
	query := r.db.db.Where("company_id = ?", companyID).Order("last_updated DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("GetAssessmentHistory: %w", err)
	}
	return assessments, nil
}

// ListDueForReview returns companies whose latest assessment has gone stale
// (next_review_date passed) or that have never been scored
func (r *Repository) ListDueForReview(now time.Time, limit int) ([]Company, error) {
	var companies []Company
	query := r.db.db.
		Where("next_review_date IS NULL OR next_review_date <= ?", now).
		Order("next_review_date ASC NULLS FIRST")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("ListDueForReview: %w", err)
	}
	return companies, nil
}

// ListCriticalAssessments returns latest assessments carrying at least one
// critical pain point, highest total pain first
func (r *Repository) ListCriticalAssessments(limit int) ([]PainAssessment, error) {
	var assessments []PainAssessment
	query := r.db.db.
		Where("is_latest AND critical_count > 0").
		Order("total_quantified_pain DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("ListCriticalAssessments: %w", err)
	}
	return assessments, nil
}
