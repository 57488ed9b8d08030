// Package handler implements the HTTP surface of the trip sync server:
// the three shared-trip operations plus the health check. Handlers decode
// requests, call the service, and map domain sentinel errors to statuses;
// no business logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tripmate/internal/domain"
)

// SharedTripServicer defines the business operations the handlers depend
// on. Defining the interface here, in the consumer package, lets handler
// tests inject a mock without touching the database or service layer.
type SharedTripServicer interface {
	Create(ctx context.Context, trip domain.NewSharedTrip) (domain.SharedTrip, error)
	Get(ctx context.Context, id uuid.UUID) (domain.SharedTrip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.SharedTripPatch) (domain.SharedTrip, error)
}

// Server holds the handlers' dependencies.
type Server struct {
	trips SharedTripServicer
	log   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(trips SharedTripServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, log: log}
}

// Routes returns the router for the sync API.
//
// The id for GET travels as a query parameter and the id for PUT inside
// the body — the wire contract shared-trip clients already speak — so all
// three operations mount on the one /trips path.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Post("/trips", s.CreateTrip)
	r.Get("/trips", s.GetTrip)
	r.Put("/trips", s.UpdateTrip)
	return r
}

// GetHealth handles GET /healthz.
// Returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
