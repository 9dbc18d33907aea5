package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"prospect-pain-engine/database"
	"prospect-pain-engine/realtime"
)

// ReviewScheduler periodically re-scores companies whose assessments have
// gone stale. Companies become due when their next_review_date passes (30
// days after the last run) or when they have never been scored at all.
type ReviewScheduler struct {
	scorer    *Scorer
	repo      *database.Repository
	broker    *realtime.Broker
	interval  time.Duration
	workers   int
	batchSize int
	done      chan bool
}

// NewReviewScheduler creates a new review scheduler
func NewReviewScheduler(scorer *Scorer, repo *database.Repository, broker *realtime.Broker, interval time.Duration, workers, batchSize int) *ReviewScheduler {
	if workers < 1 {
		workers = 1
	}
	return &ReviewScheduler{
		scorer:    scorer,
		repo:      repo,
		broker:    broker,
		interval:  interval,
		workers:   workers,
		batchSize: batchSize,
		done:      make(chan bool),
	}
}

// Start begins the review loop
func (rs *ReviewScheduler) Start() {
	log.Println("🔁 Review scheduler started")

	ticker := time.NewTicker(rs.interval)
	defer ticker.Stop()

	// Initial run
	rs.runCycle()

	for {
		select {
		case <-ticker.C:
			rs.runCycle()
		case <-rs.done:
			log.Println("🔁 Review scheduler stopped")
			return
		}
	}
}

// Stop stops the review loop
func (rs *ReviewScheduler) Stop() {
	rs.done <- true
}

// runCycle claims one batch of due companies and re-scores them through a
// bounded worker pool. The engine is stateless so the workers share it
// without locking.
func (rs *ReviewScheduler) runCycle() {
	now := time.Now()
	companies, err := rs.repo.ListDueForReview(now, rs.batchSize)
	if err != nil {
		log.Printf("⚠️  Review cycle failed to list due companies: %v", err)
		return
	}
	if len(companies) == 0 {
		return
	}

	log.Printf("🔁 Review cycle: %d companies due for re-score", len(companies))

	ids := make([]string, 0, len(companies))
	for _, company := range companies {
		ids = append(ids, company.ID)
	}

	scored, failed := rescoreBatch(ids, rs.workers, func(ctx context.Context, companyID string) error {
		_, _, err := rs.scorer.Rescore(ctx, companyID)
		return err
	})

	log.Printf("✅ Review cycle complete: %d scored, %d failed", scored, failed)
	if rs.broker != nil {
		rs.broker.Publish(realtime.Event{
			Type:    "review_cycle",
			Message: fmt.Sprintf("re-scored %d companies, %d failed", scored, failed),
			At:      time.Now(),
		})
	}
}

// rescoreBatch fans a batch of company IDs across a bounded worker pool,
// returning how many re-scores succeeded and failed. Each company is an
// independent unit of work; one failure never stops the batch.
func rescoreBatch(companyIDs []string, workers int, rescore func(ctx context.Context, companyID string) error) (scored, failed int) {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string, len(companyIDs))
	for _, id := range companyIDs {
		jobs <- id
	}
	close(jobs)

	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for companyID := range jobs {
				if err := rescore(context.Background(), companyID); err != nil {
					log.Printf("⚠️  Re-score failed for %s: %v", companyID, err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				mu.Lock()
				scored++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return scored, failed
}
