// Package gateway is the client side of the trip-sync protocol: three
// remote operations that promote a local session into a shared record and
// keep its field-groups up to date. It translates between the local
// entity shapes and the wire shapes of the sync server.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"tripmate/internal/domain"
)

// defaultTimeout bounds every sync request. Without it a hung request
// would leave the "generating link…" spinner outstanding forever.
const defaultTimeout = 15 * time.Second

// SharedTrip is a shared trip record as the sync server serves it.
// The collection fields are opaque JSON arrays; the client decodes the
// slices it cares about itself.
type SharedTrip struct {
	ID          string          `json:"id"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Places      json.RawMessage `json:"places"`
	Expenses    json.RawMessage `json:"expenses"`
	Itinerary   json.RawMessage `json:"itinerary"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Client calls the sync server's three trip operations.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the sync server at baseURL.
// Pass nil to use a default client with a 15-second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// CreateTrip creates a new shared record from the local trip info and
// place snapshot and returns its id. The remote side initializes expenses
// and itinerary to empty arrays.
//
// Create is the one non-idempotent operation, so it is never retried:
// a retry racing a slow-but-successful first attempt would mint a second
// record behind the user's back. The caller owns the retry affordance.
func (c *Client) CreateTrip(ctx context.Context, info domain.TripInfo, places []domain.Place) (string, error) {
	if places == nil {
		places = []domain.Place{}
	}
	payload := map[string]any{
		"destination": info.Destination,
		"startDate":   info.StartDate,
		"endDate":     info.EndDate,
		"places":      places,
	}

	var out struct {
		TripID string `json:"tripId"`
	}
	if err := c.do(ctx, http.MethodPost, "/trips", nil, payload, &out); err != nil {
		return "", fmt.Errorf("gateway.Client.CreateTrip: %w", err)
	}
	return out.TripID, nil
}

// FetchTrip retrieves the shared record with the given id.
// A missing record yields an error matching domain.ErrNotFound, distinct
// from transport failures, so the UI can say "trip not found" rather than
// "try again".
func (c *Client) FetchTrip(ctx context.Context, id string) (SharedTrip, error) {
	if id == "" {
		return SharedTrip{}, fmt.Errorf("gateway.Client.FetchTrip: %w: trip id is required", domain.ErrValidation)
	}

	var out SharedTrip
	err := c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, "/trips", url.Values{"id": {id}}, nil, &out)
	})
	if err != nil {
		return SharedTrip{}, fmt.Errorf("gateway.Client.FetchTrip: %w", err)
	}
	return out, nil
}

// UpdateTrip applies a field-group partial update to the shared record and
// returns the full record after the update. Only the field-groups set on
// the patch are sent; the remote preserves everything else and always
// refreshes updated_at. An empty patch is a valid touch.
func (c *Client) UpdateTrip(ctx context.Context, id string, patch domain.SharedTripPatch) (SharedTrip, error) {
	if id == "" {
		return SharedTrip{}, fmt.Errorf("gateway.Client.UpdateTrip: %w: trip id is required", domain.ErrValidation)
	}

	payload := map[string]any{"id": id}
	if patch.Places.Valid {
		payload["places"] = patch.Places.Value
	}
	if patch.Expenses.Valid {
		payload["expenses"] = patch.Expenses.Value
	}
	if patch.Itinerary.Valid {
		payload["itinerary"] = patch.Itinerary.Value
	}

	var out SharedTrip
	err := c.doRetry(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/trips", nil, payload, &out)
	})
	if err != nil {
		return SharedTrip{}, fmt.Errorf("gateway.Client.UpdateTrip: %w", err)
	}
	return out, nil
}

// doRetry runs fn with bounded exponential backoff. Only transport and
// server-side failures are retried; validation and not-found come back
// immediately because retrying them cannot change the outcome.
func (c *Client) doRetry(ctx context.Context, fn func(context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, fn)
}

// do performs one request-response round trip. Remote failures are mapped
// onto the domain sentinels: 400 → ErrValidation, 404 → ErrNotFound.
// Network errors and 5xx responses are marked retryable for doRetry.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return retry.RetryableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidation, remoteMessage(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, remoteMessage(resp.Body))
	case resp.StatusCode >= 500:
		return retry.RetryableError(fmt.Errorf("server error (%d): %s", resp.StatusCode, remoteMessage(resp.Body)))
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, remoteMessage(resp.Body))
	}
}

// remoteMessage extracts the message from a {error:{code,message}} body.
// Falls back to a generic message when the body is not in that shape.
func remoteMessage(r io.Reader) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Error.Message == "" {
		return "request failed"
	}
	return body.Error.Message
}
