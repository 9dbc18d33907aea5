package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"prospect-pain-engine/database"
)

// handleUpsertCompany creates or updates a company record
func (s *Server) handleUpsertCompany(w http.ResponseWriter, r *http.Request) {
	var company database.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		http.Error(w, "invalid company payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if company.ID == "" || company.Name == "" {
		http.Error(w, "company id and name are required", http.StatusBadRequest)
		return
	}

	if err := s.repo.SaveCompany(&company); err != nil {
		log.Printf("❌ Failed to save company %s: %v", company.ID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Baseline changed, any cached assessment is stale
	if err := s.assessments.Invalidate(r.Context(), company.ID); err != nil {
		log.Printf("⚠️ Failed to invalidate cached assessment for %s: %v", company.ID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(company)
}

// handleQuantify re-scores a company immediately and returns the assessment
func (s *Server) handleQuantify(w http.ResponseWriter, r *http.Request) {
	companyID := r.PathValue("id")

	log.Printf("🎯 Quantifying pain for company: %s", companyID)

	result, summary, err := s.quantifier.Rescore(r.Context(), companyID)
	if err != nil {
		log.Printf("❌ Failed to quantify %s: %v", companyID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ %s: %s", companyID, summary)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"assessment": result,
		"summary":    summary,
	})
}

// handleGetPain returns the latest assessment for a company, serving from
// the cache between re-scores
func (s *Server) handleGetPain(w http.ResponseWriter, r *http.Request) {
	companyID := r.PathValue("id")

	if result, ok := s.assessments.Get(r.Context(), companyID); ok {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	assessment, err := s.repo.GetLatestAssessment(companyID)
	if err != nil {
		log.Printf("❌ Failed to fetch assessment for %s: %v", companyID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if assessment == nil {
		http.Error(w, "company has not been scored", http.StatusNotFound)
		return
	}

	result, err := assessment.Result()
	if err != nil {
		log.Printf("❌ Failed to decode assessment for %s: %v", companyID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Re-warm the cache; a miss here just means the next read hits the DB again
	if err := s.assessments.Set(r.Context(), result); err != nil {
		log.Printf("⚠️ Failed to cache assessment for %s: %v", companyID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleGetPainHistory returns past assessments for a company
func (s *Server) handleGetPainHistory(w http.ResponseWriter, r *http.Request) {
	companyID := r.PathValue("id")

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history, err := s.repo.GetAssessmentHistory(companyID, limit)
	if err != nil {
		log.Printf("❌ Failed to fetch history for %s: %v", companyID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"company_id": companyID,
		"history":    history,
		"count":      len(history),
	})
}

// handleGetCritical returns companies carrying critical pain points
func (s *Server) handleGetCritical(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	assessments, err := s.repo.ListCriticalAssessments(limit)
	if err != nil {
		log.Printf("❌ Failed to fetch critical assessments: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"assessments": assessments,
		"count":       len(assessments),
	})
}
