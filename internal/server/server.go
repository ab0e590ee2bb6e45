// Package server exposes the lifecycle store and scoring engine as a JSON
// HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"solidaria/internal/storage"
	"solidaria/internal/store"
	"solidaria/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	store    *store.Store
	evidence *storage.EvidenceStore

	server *http.Server
}

// New wires the service. evidence may be nil; upload endpoints then report
// that the storage collaborator is not configured.
func New(
	config *types.Config,
	logger *logrus.Logger,
	st *store.Store,
	evidence *storage.EvidenceStore,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger:   logger,
		config:   config,
		store:    st,
		evidence: evidence,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the routed handler, used directly by tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/auth/login", s.handleLogin, http.MethodPost)

	// Public catalog and donation intake.
	r.HandleFunc("/api/publications", s.handleListPublications, http.MethodGet)
	r.HandleFunc("/api/publications/:id", s.handleGetPublication, http.MethodGet)
	r.HandleFunc("/api/publications/:id/donations", s.handleDonationsForPublication, http.MethodGet)
	r.HandleFunc("/api/donations", s.handleRecordDonation, http.MethodPost)

	// Staff operations.
	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/api/requests", s.handleSubmitRequest, http.MethodPost)
		r.HandleFunc("/api/requests", s.handleListRequests, http.MethodGet)
		r.HandleFunc("/api/requests/scored", s.handleScoredRequests, http.MethodGet)
		r.HandleFunc("/api/requests/:id", s.handleGetRequest, http.MethodGet)
		r.HandleFunc("/api/requests/:id/status", s.handleChangeRequestStatus, http.MethodPost)

		r.HandleFunc("/api/inventory", s.handleRegisterInventoryItem, http.MethodPost)
		r.HandleFunc("/api/inventory", s.handleListInventory, http.MethodGet)
		r.HandleFunc("/api/inventory/:id/status", s.handleUpdateInventoryStatus, http.MethodPatch)

		r.HandleFunc("/api/events", s.handleRegisterEvent, http.MethodPost)
		r.HandleFunc("/api/events", s.handleListEvents, http.MethodGet)

		r.HandleFunc("/api/evidence", s.handleUploadEvidence, http.MethodPost)
	})

	// Anything else answers with a generic not-implemented message echoing
	// the requested action, for development-time discovery.
	r.Handle("/...", http.HandlerFunc(s.handleUnsupported))
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) handleUnsupported(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusNotImplemented, map[string]string{
		"message": fmt.Sprintf("not implemented: %s %s", r.Method, r.URL.Path),
	})
}
