package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/domain"
	"tripmate/internal/gateway"
)

func TestClient_CreateTrip(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trips", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"tripId":"b2c7a2a0-1111-4222-8333-444455556666"}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	info := domain.TripInfo{Destination: "Da Nang, Vietnam", StartDate: "2026-09-01", EndDate: "2026-09-07"}
	id, err := c.CreateTrip(context.Background(), info, nil)

	require.NoError(t, err)
	assert.Equal(t, "b2c7a2a0-1111-4222-8333-444455556666", id)
	assert.Equal(t, "Da Nang, Vietnam", gotBody["destination"])
	assert.Equal(t, "2026-09-01", gotBody["startDate"])
	// A nil snapshot is sent as an empty array, never JSON null.
	assert.Equal(t, []any{}, gotBody["places"])
}

// TestClient_CreateTrip_NoRetry verifies that a failed create is not
// retried: a second attempt could mint a duplicate record.
func TestClient_CreateTrip_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	_, err := c.CreateTrip(context.Background(), domain.TripInfo{}, nil)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_FetchTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "trip-1", r.URL.Query().Get("id"))
		w.Write([]byte(`{"id":"trip-1","destination":"Tokyo","start_date":"2026-10-01","end_date":"2026-10-05","places":[{"name":"Asakusa"}],"expenses":[],"itinerary":[]}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	trip, err := c.FetchTrip(context.Background(), "trip-1")

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", trip.Destination)
	assert.Equal(t, "2026-10-01", trip.StartDate)
	assert.JSONEq(t, `[{"name":"Asakusa"}]`, string(trip.Places))
}

func TestClient_FetchTrip_EmptyID(t *testing.T) {
	c := gateway.NewClient("http://unused", nil)
	_, err := c.FetchTrip(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClient_FetchTrip_NotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"not_found","message":"trip not found"}}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	_, err := c.FetchTrip(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "trip not found")
	// Not-found is final; retrying cannot change the outcome.
	assert.Equal(t, int32(1), calls.Load())
}

// TestClient_FetchTrip_RetriesServerError exercises the backoff path: the
// first attempt gets a 500, the second succeeds.
func TestClient_FetchTrip_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id":"trip-1","destination":"Tokyo"}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	trip, err := c.FetchTrip(context.Background(), "trip-1")

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", trip.Destination)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_UpdateTrip_SendsOnlySetFields(t *testing.T) {
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"trip-1","expenses":[{"amount":50}]}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	patch := domain.SharedTripPatch{
		Expenses: domain.RawPatchField(json.RawMessage(`[{"amount":50}]`)),
	}
	trip, err := c.UpdateTrip(context.Background(), "trip-1", patch)

	require.NoError(t, err)
	assert.JSONEq(t, `"trip-1"`, string(gotBody["id"]))
	assert.JSONEq(t, `[{"amount":50}]`, string(gotBody["expenses"]))
	assert.NotContains(t, gotBody, "places")
	assert.NotContains(t, gotBody, "itinerary")
	assert.JSONEq(t, `[{"amount":50}]`, string(trip.Expenses))
}

func TestClient_UpdateTrip_EmptyPatch(t *testing.T) {
	var gotBody map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"trip-1"}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	_, err := c.UpdateTrip(context.Background(), "trip-1", domain.SharedTripPatch{})

	require.NoError(t, err)
	assert.Len(t, gotBody, 1) // id only
}

func TestClient_UpdateTrip_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"validation","message":"no fields to update"}}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, srv.Client())
	_, err := c.UpdateTrip(context.Background(), "trip-1", domain.SharedTripPatch{})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "no fields to update")
}
