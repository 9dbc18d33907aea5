package cache

import (
	"context"
	"fmt"
	"time"

	"prospect-pain-engine/pain"
)

// maxAssessmentTTL caps how long a cached assessment may outlive its
// computation even if the review window says otherwise.
const maxAssessmentTTL = pain.ReviewInterval

// AssessmentCache provides caching for quantified pain results so dashboard
// reads skip the database between re-scores.
type AssessmentCache struct {
	redis *RedisClient
}

// NewAssessmentCache creates a new assessment cache instance
func NewAssessmentCache(redis *RedisClient) *AssessmentCache {
	return &AssessmentCache{
		redis: redis,
	}
}

// Get retrieves the cached assessment for a company.
// Returns the cached result and true if found, zero value and false otherwise
func (c *AssessmentCache) Get(ctx context.Context, companyID string) (pain.QuantifiedPain, bool) {
	if c.redis == nil {
		return pain.QuantifiedPain{}, false
	}

	var result pain.QuantifiedPain
	if err := c.redis.Get(ctx, assessmentKey(companyID), &result); err != nil {
		return pain.QuantifiedPain{}, false
	}
	return result, true
}

// Set caches an assessment until its next review date. A cache with no
// backing redis is a no-op, not an error.
func (c *AssessmentCache) Set(ctx context.Context, result pain.QuantifiedPain) error {
	if c.redis == nil {
		return nil
	}

	ttl := time.Until(result.NextReviewDate)
	if ttl <= 0 || ttl > maxAssessmentTTL {
		ttl = maxAssessmentTTL
	}
	return c.redis.Set(ctx, assessmentKey(result.CompanyID), result, ttl)
}

// Invalidate drops the cached assessment for a company, used when a manual
// re-score lands before the review window expires
func (c *AssessmentCache) Invalidate(ctx context.Context, companyID string) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Delete(ctx, assessmentKey(companyID))
}

func assessmentKey(companyID string) string {
	return fmt.Sprintf("pain:assessment:%s", companyID)
}
