package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
)

// handleGetDistribution returns the pain-tier distribution across the book
func (s *Server) handleGetDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := s.stats.GetPainTierDistribution()
	if err != nil {
		log.Printf("❌ Failed to fetch tier distribution: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totals, err := s.stats.GetCategoryTotals()
	if err != nil {
		log.Printf("❌ Failed to fetch category totals: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"tiers":      distribution,
		"categories": totals,
	})
}

// handleGetUrgencyLeaders returns the highest-urgency companies
func (s *Server) handleGetUrgencyLeaders(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	leaders, err := s.stats.GetUrgencyLeaders(limit)
	if err != nil {
		log.Printf("❌ Failed to fetch urgency leaders: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"leaders": leaders,
		"count":   len(leaders),
	})
}

// handleGetDueReviews returns how many companies are waiting on a re-score
func (s *Server) handleGetDueReviews(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	count, err := s.stats.GetDueReviewCount(now)
	if err != nil {
		log.Printf("❌ Failed to count due reviews: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"due":   count,
		"as_of": now,
	})
}
