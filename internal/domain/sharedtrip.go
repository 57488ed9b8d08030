package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SharedTrip is the remote, server-held copy of a trip, reachable by the
// id embedded in a shareable URL. The places, expenses, and itinerary
// columns are opaque JSON arrays: the server stores and serves them
// without interpreting their contents, so client-side schema changes never
// require a server deploy.
//
// places and itinerary are independent blobs updated by different UI
// surfaces; the server does not reconcile them.
type SharedTrip struct {
	ID          uuid.UUID
	Destination string
	StartDate   time.Time // zero when the record has no start date
	EndDate     time.Time // zero when the record has no end date
	Places      json.RawMessage
	Expenses    json.RawMessage
	Itinerary   json.RawMessage
	UpdatedAt   time.Time
}

// NewSharedTrip carries the fields of a shared trip about to be created.
// Expenses and itinerary always start empty; only the initial snapshot of
// places travels with the create request.
type NewSharedTrip struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Places      json.RawMessage
}

// PatchField is one field-group of a partial shared-trip update.
// The zero value means "leave the remote value untouched"; a set field
// overwrites it, including overwriting with an explicit JSON null.
// This is the tri-state (absent / null / value) the sync protocol needs:
// an empty array clears a collection, while an absent field preserves
// whatever the remote currently holds.
type PatchField struct {
	Valid bool
	Value json.RawMessage
}

// SetPatchField returns a set PatchField holding the JSON encoding of v.
func SetPatchField(v any) (PatchField, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return PatchField{}, fmt.Errorf("domain.SetPatchField: %w", err)
	}
	return PatchField{Valid: true, Value: b}, nil
}

// RawPatchField returns a set PatchField holding raw, already-encoded JSON.
// A nil raw value is normalized to JSON null.
func RawPatchField(raw json.RawMessage) PatchField {
	if raw == nil {
		raw = json.RawMessage("null")
	}
	return PatchField{Valid: true, Value: raw}
}

// SharedTripPatch names the field-groups of a partial update. Each UI
// surface pushes only its own slice (itinerary editing vs. expense
// tracking), so concurrent editors clobber each other only when they touch
// the same field-group. Writes to the same field-group are last-write-wins
// with no conflict detection.
type SharedTripPatch struct {
	Places    PatchField
	Expenses  PatchField
	Itinerary PatchField
}

// IsEmpty reports whether no field-group is set. An empty patch is still a
// valid update: it refreshes the record's updated_at and nothing else.
func (p SharedTripPatch) IsEmpty() bool {
	return !p.Places.Valid && !p.Expenses.Valid && !p.Itinerary.Valid
}
