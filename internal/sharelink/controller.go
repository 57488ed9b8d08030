// Package sharelink decides whether a session is local-only or linked to a
// shared record, and orchestrates the promotion from one to the other.
//
// The binding is the "trip" query parameter on the session URL: a reload
// or a copied link carries the parameter and re-establishes the Linked
// state for free. There is no unlink transition — once a record exists
// the session keeps pointing at it.
package sharelink

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"tripmate/internal/domain"
	"tripmate/internal/gateway"
	"tripmate/internal/store"
)

// TripParam is the query parameter carrying the shared-record id.
const TripParam = "trip"

// ErrNotLinked is returned by the push operations when no shared-record id
// is bound to the session URL. Callers decide whether to prompt the user
// to share first; the controller never creates a record implicitly on push.
var ErrNotLinked = errors.New("no shared trip bound to session")

// Gateway is the slice of the sync client the controller depends on.
type Gateway interface {
	CreateTrip(ctx context.Context, info domain.TripInfo, places []domain.Place) (string, error)
	UpdateTrip(ctx context.Context, id string, patch domain.SharedTripPatch) (gateway.SharedTrip, error)
}

// Controller promotes a local session to a shared record and pushes local
// field-groups to an already-bound record.
type Controller struct {
	store *store.Store
	gw    Gateway
}

// NewController returns a Controller reading snapshots from store and
// syncing through gw.
func NewController(s *store.Store, gw Gateway) *Controller {
	return &Controller{store: s, gw: gw}
}

// TripID returns the shared-record id bound to u, if any.
func (c *Controller) TripID(u *url.URL) (string, bool) {
	id := u.Query().Get(TripParam)
	return id, id != ""
}

// ShareResult is the outcome of a successful Share.
type ShareResult struct {
	// TripID is the shared-record id now bound to the session.
	TripID string
	// URL is the shareable link: origin + path + the trip parameter only.
	URL string
	// Created reports whether a new remote record was minted, as opposed
	// to reusing the one already bound to the session.
	Created bool
}

// Share makes the session shareable. When an id is already bound to u it
// is reused — sharing twice never mints a second record. Otherwise the
// current trip info and place snapshot are pushed to a new remote record
// and its id is bound into u, so the caller's URL (and any reload of it)
// stays Linked.
//
// On failure nothing changes: the local store is untouched and u keeps no
// binding, so the user can simply try again.
func (c *Controller) Share(ctx context.Context, u *url.URL) (ShareResult, error) {
	if id, ok := c.TripID(u); ok {
		return ShareResult{TripID: id, URL: shareURL(u, id)}, nil
	}

	info := c.store.TripInfo()
	places := c.store.Places()

	id, err := c.gw.CreateTrip(ctx, info, places)
	if err != nil {
		return ShareResult{}, fmt.Errorf("sharelink.Controller.Share: %w", err)
	}

	q := u.Query()
	q.Set(TripParam, id)
	u.RawQuery = q.Encode()

	return ShareResult{TripID: id, URL: shareURL(u, id), Created: true}, nil
}

// PushPlaces pushes the local place collection to the bound record,
// leaving the record's other field-groups untouched.
func (c *Controller) PushPlaces(ctx context.Context, u *url.URL) error {
	field, err := domain.SetPatchField(c.store.Places())
	if err != nil {
		return fmt.Errorf("sharelink.Controller.PushPlaces: %w", err)
	}
	return c.push(ctx, u, "PushPlaces", domain.SharedTripPatch{Places: field})
}

// PushExpenses pushes the local expense ledger to the bound record.
func (c *Controller) PushExpenses(ctx context.Context, u *url.URL) error {
	field, err := domain.SetPatchField(c.store.Expenses())
	if err != nil {
		return fmt.Errorf("sharelink.Controller.PushExpenses: %w", err)
	}
	return c.push(ctx, u, "PushExpenses", domain.SharedTripPatch{Expenses: field})
}

// PushItinerary pushes the scheduled slice of the local places — those
// with a scheduled date, ordered by date then time — to the bound record's
// itinerary field-group. The itinerary is stored independently of places
// on the remote side; this is the one writer that derives it locally.
func (c *Controller) PushItinerary(ctx context.Context, u *url.URL) error {
	var scheduled []domain.Place
	for _, p := range c.store.Places() {
		if p.ScheduledDate != "" {
			scheduled = append(scheduled, p)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		if scheduled[i].ScheduledDate != scheduled[j].ScheduledDate {
			return scheduled[i].ScheduledDate < scheduled[j].ScheduledDate
		}
		return scheduled[i].ScheduledTime < scheduled[j].ScheduledTime
	})
	if scheduled == nil {
		scheduled = []domain.Place{}
	}

	field, err := domain.SetPatchField(scheduled)
	if err != nil {
		return fmt.Errorf("sharelink.Controller.PushItinerary: %w", err)
	}
	return c.push(ctx, u, "PushItinerary", domain.SharedTripPatch{Itinerary: field})
}

// push applies one field-group patch to the record bound to u.
func (c *Controller) push(ctx context.Context, u *url.URL, op string, patch domain.SharedTripPatch) error {
	id, ok := c.TripID(u)
	if !ok {
		return fmt.Errorf("sharelink.Controller.%s: %w", op, ErrNotLinked)
	}
	if _, err := c.gw.UpdateTrip(ctx, id, patch); err != nil {
		return fmt.Errorf("sharelink.Controller.%s: %w", op, err)
	}
	return nil
}

// shareURL builds the link surfaced for copying: the session's origin and
// path with the trip parameter as its only query parameter. Transient
// session parameters never leak into a shared link.
func shareURL(u *url.URL, id string) string {
	link := url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}
	q := url.Values{}
	q.Set(TripParam, id)
	link.RawQuery = q.Encode()
	return link.String()
}
