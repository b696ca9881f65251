// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	pdf        PDFRenderer
}

// PDFRenderer exports rendered HTML to PDF. Satisfied by
// rendering.PDFRenderer; a fake stands in for it in tests.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Config holds server configuration
type Config struct {
	Port       int
	Store      *store.Store
	PDF        PDFRenderer
	ChromePath string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server: store is required")
	}

	s := &Server{
		store: cfg.Store,
		pdf:   cfg.PDF,
	}
	if s.pdf == nil {
		s.pdf = rendering.NewPDFRenderer(cfg.ChromePath)
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume document endpoints
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume", s.handleSetResume)
	mux.HandleFunc("POST /resume/reset", s.handleResetResume)
	mux.HandleFunc("PATCH /resume/personal-info", s.handleUpdatePersonalInfo)

	// Section item endpoints
	mux.HandleFunc("POST /resume/{section}/items", s.handleAddItem)
	mux.HandleFunc("PATCH /resume/{section}/items/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /resume/{section}/items/{id}", s.handleRemoveItem)

	// Template and section selection endpoints
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("PUT /resume/template", s.handleSetTemplate)
	mux.HandleFunc("GET /resume/active-section", s.handleGetActiveSection)
	mux.HandleFunc("PUT /resume/active-section", s.handleSetActiveSection)

	// Import / export endpoints
	mux.HandleFunc("POST /import", s.handleImport)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)

	// Change feed
	mux.HandleFunc("GET /events", s.handleEvents)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
