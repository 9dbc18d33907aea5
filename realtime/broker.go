package realtime

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"prospect-pain-engine/pain"
)

// Event is one dashboard notification. Type distinguishes assessment
// completions from scheduler activity.
type Event struct {
	Type       string               `json:"type"` // "assessment", "review_cycle"
	CompanyID  string               `json:"company_id,omitempty"`
	Assessment *pain.QuantifiedPain `json:"assessment,omitempty"`
	Message    string               `json:"message,omitempty"`
	At         time.Time            `json:"at"`
}

// Broker handles Server-Sent Events (SSE) clients and broadcasting
type Broker struct {
	clients    map[chan []byte]bool
	register   chan chan []byte
	unregister chan chan []byte
	broadcast  chan []byte
	mu         sync.RWMutex
}

// NewBroker creates a new SSE broker
func NewBroker() *Broker {
	return &Broker{
		clients:    make(map[chan []byte]bool),
		register:   make(chan chan []byte),
		unregister: make(chan chan []byte),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the broker loop
func (b *Broker) Run() {
	for {
		select {
		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			log.Printf("SSE Client connected. Total: %d", len(b.clients))

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client)
				log.Printf("SSE Client disconnected. Total: %d", len(b.clients))
			}
			b.mu.Unlock()

		case msg := <-b.broadcast:
			b.mu.RLock()
			for client := range b.clients {
				select {
				case client <- msg:
				default:
					// Skip if client buffer is full to prevent blocking
				}
			}
			b.mu.RUnlock()
		}
	}
}

// PublishAssessment broadcasts a completed scoring run to all clients
func (b *Broker) PublishAssessment(result pain.QuantifiedPain) {
	b.Publish(Event{
		Type:       "assessment",
		CompanyID:  result.CompanyID,
		Assessment: &result,
		At:         result.LastUpdated,
	})
}

// Publish broadcasts an arbitrary event to all clients
func (b *Broker) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal realtime event: %v", err)
		return
	}

	select {
	case b.broadcast <- data:
	default:
		log.Println("⚠️  Realtime broadcast buffer full, dropping event")
	}
}

// ServeHTTP handles the SSE endpoint
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	clientChan := make(chan []byte, 10)
	b.register <- clientChan

	notify := r.Context().Done()

	for {
		select {
		case <-notify:
			b.unregister <- clientChan
			return
		case msg, open := <-clientChan:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
