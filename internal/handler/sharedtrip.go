package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"tripmate/internal/domain"
)

// optionalJSON distinguishes an absent request field from a supplied one
// (including an explicit JSON null). encoding/json leaves absent fields
// untouched and only calls UnmarshalJSON for fields that appear in the
// payload, so Present is the "was this key sent" bit that plain pointer
// fields cannot carry for null.
type optionalJSON struct {
	Present bool
	Value   json.RawMessage
}

func (o *optionalJSON) UnmarshalJSON(b []byte) error {
	o.Present = true
	o.Value = append(o.Value[:0], b...)
	return nil
}

// createTripRequest is the POST /trips body. Field names match what the
// share controller sends: the local trip-info shape, camelCase, with
// date-only strings for the travel dates.
type createTripRequest struct {
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"startDate"`
	EndDate     *openapi_types.Date `json:"endDate"`
	Places      json.RawMessage     `json:"places"`
}

// createTripResponse carries only the new record's id; the sharing device
// already holds the content it just pushed.
type createTripResponse struct {
	TripID uuid.UUID `json:"tripId"`
}

// updateTripRequest is the PUT /trips body. The three collection fields
// are tri-state: absent means "leave unchanged", anything supplied —
// including null — overwrites.
type updateTripRequest struct {
	ID        string       `json:"id"`
	Places    optionalJSON `json:"places"`
	Expenses  optionalJSON `json:"expenses"`
	Itinerary optionalJSON `json:"itinerary"`
}

// sharedTripResponse is the full record as served to clients, snake_case
// like the underlying columns.
type sharedTripResponse struct {
	ID          uuid.UUID           `json:"id"`
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Places      json.RawMessage     `json:"places"`
	Expenses    json.RawMessage     `json:"expenses"`
	Itinerary   json.RawMessage     `json:"itinerary"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateTrip handles POST /trips: mint a new shared record from a local
// snapshot. Responds 200 {tripId} — creation is the promotion of an
// existing local trip, not the birth of a new resource the client will
// navigate to, so the original wire contract used 200 and we keep it.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	trip := domain.NewSharedTrip{
		Destination: req.Destination,
		Places:      req.Places,
	}
	if req.StartDate != nil {
		trip.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate.Time
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		s.log.Error("create trip failed", "error", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, createTripResponse{TripID: created.ID})
}

// GetTrip handles GET /trips?id=<uuid>: fetch the full shared record.
// 400 when the id is missing or not a UUID, 404 when no record matches.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeValidationError(w, "trip id is required")
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeValidationError(w, "trip id must be a UUID")
		return
	}

	trip, err := s.trips.Get(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeNotFound(w, "trip not found")
			return
		}
		s.log.Error("get trip failed", "trip_id", id, "error", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips: a field-group partial update addressed by
// the id in the body. Fields absent from the body keep their remote value;
// updated_at moves on every successful update, content change or not.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if req.ID == "" {
		writeValidationError(w, "trip id is required")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeValidationError(w, "trip id must be a UUID")
		return
	}

	patch := domain.SharedTripPatch{}
	if req.Places.Present {
		patch.Places = domain.RawPatchField(req.Places.Value)
	}
	if req.Expenses.Present {
		patch.Expenses = domain.RawPatchField(req.Expenses.Value)
	}
	if req.Itinerary.Present {
		patch.Itinerary = domain.RawPatchField(req.Itinerary.Value)
	}

	updated, err := s.trips.Update(r.Context(), id, patch)
	if err != nil {
		if isNotFound(err) {
			writeNotFound(w, "trip not found")
			return
		}
		s.log.Error("update trip failed", "trip_id", id, "error", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// tripToResponse converts a domain.SharedTrip into the wire shape.
// Zero dates become JSON null.
func tripToResponse(t domain.SharedTrip) sharedTripResponse {
	resp := sharedTripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		Places:      t.Places,
		Expenses:    t.Expenses,
		Itinerary:   t.Itinerary,
		UpdatedAt:   t.UpdatedAt,
	}
	if !t.StartDate.IsZero() {
		d := openapi_types.Date{Time: t.StartDate}
		resp.StartDate = &d
	}
	if !t.EndDate.IsZero() {
		d := openapi_types.Date{Time: t.EndDate}
		resp.EndDate = &d
	}
	return resp
}
