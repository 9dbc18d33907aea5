package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"prospect-pain-engine/cache"
	"prospect-pain-engine/database"
	"prospect-pain-engine/pain"
	"prospect-pain-engine/realtime"
)

// Server handles HTTP API requests
type Server struct {
	repo        *database.Repository
	stats       *database.StatsDB
	assessments *cache.AssessmentCache
	broker      *realtime.Broker
	hub         *realtime.Hub
	quantifier  QuantifierInterface
}

// QuantifierInterface defines the scoring operations the API triggers
type QuantifierInterface interface {
	Rescore(ctx context.Context, companyID string) (pain.QuantifiedPain, string, error)
}

// NewServer creates a new API server instance
func NewServer(repo *database.Repository, stats *database.StatsDB, assessments *cache.AssessmentCache, broker *realtime.Broker, hub *realtime.Hub, quantifier QuantifierInterface) *Server {
	return &Server{
		repo:        repo,
		stats:       stats,
		assessments: assessments,
		broker:      broker,
		hub:         hub,
		quantifier:  quantifier,
	}
}

// Start starts the HTTP server on the specified port
func (s *Server) Start(port int) error {
	mux := http.NewServeMux()

	// Register routes
	mux.Handle("GET /api/events", s.broker) // SSE Endpoint
	mux.Handle("GET /api/ws", s.hub)        // Websocket Endpoint

	// Company & Assessment Routes
	mux.HandleFunc("POST /api/companies", s.handleUpsertCompany)
	mux.HandleFunc("POST /api/companies/{id}/quantify", s.handleQuantify)
	mux.HandleFunc("GET /api/companies/{id}/pain", s.handleGetPain)
	mux.HandleFunc("GET /api/companies/{id}/pain/history", s.handleGetPainHistory)

	// Dashboard Aggregate Routes
	mux.HandleFunc("GET /api/pain/critical", s.handleGetCritical)
	mux.HandleFunc("GET /api/pain/distribution", s.handleGetDistribution)
	mux.HandleFunc("GET /api/pain/urgency", s.handleGetUrgencyLeaders)
	mux.HandleFunc("GET /api/reviews/due", s.handleGetDueReviews)

	addr := fmt.Sprintf(":%d", port)
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Streaming endpoints manage their own lifetime
	}

	log.Printf("🌐 API server listening on %s", addr)
	return server.ListenAndServe()
}
