package app

import (
	"context"
	"fmt"
	"log"

	"prospect-pain-engine/cache"
	"prospect-pain-engine/database"
	"prospect-pain-engine/helpers"
	"prospect-pain-engine/pain"
	"prospect-pain-engine/realtime"
)

// Scorer runs the pain engine against persisted company data and fans the
// result out to storage, cache and the realtime feeds. The engine itself is
// stateless, so one Scorer serves all callers concurrently.
type Scorer struct {
	engine *pain.Engine
	repo   *database.Repository
	cache  *cache.AssessmentCache
	broker *realtime.Broker
	hub    *realtime.Hub
}

// NewScorer creates a new scorer
func NewScorer(engine *pain.Engine, repo *database.Repository, assessments *cache.AssessmentCache, broker *realtime.Broker, hub *realtime.Hub) *Scorer {
	return &Scorer{
		engine: engine,
		repo:   repo,
		cache:  assessments,
		broker: broker,
		hub:    hub,
	}
}

// Rescore loads a company's inputs, quantifies its pain and persists the
// result as the latest assessment. The summary string is the one-line tier
// label for logs and API responses.
func (s *Scorer) Rescore(ctx context.Context, companyID string) (pain.QuantifiedPain, string, error) {
	baseline, profiles, bundle, events, err := s.repo.LoadInputs(companyID)
	if err != nil {
		return pain.QuantifiedPain{}, "", fmt.Errorf("Rescore: %w", err)
	}

	result := s.engine.Quantify(baseline, profiles, bundle, events)
	summary := pain.Summarize(result)

	if _, err := s.repo.SaveAssessment(result, summary); err != nil {
		return pain.QuantifiedPain{}, "", fmt.Errorf("Rescore: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, result); err != nil {
			log.Printf("⚠️  Failed to cache assessment for %s: %v", companyID, err)
		}
	}
	if s.broker != nil {
		s.broker.PublishAssessment(result)
	}
	if s.hub != nil {
		s.hub.Publish(realtime.Event{
			Type:       "assessment",
			CompanyID:  result.CompanyID,
			Assessment: &result,
			At:         result.LastUpdated,
		})
	}

	log.Printf("💰 %s (%s): %s total pain, urgency %.0f, confidence %.2f",
		baseline.Name, companyID, helpers.FormatUSD(result.TotalQuantifiedPain),
		result.UrgencyScore, result.Confidence)

	return result, summary, nil
}
