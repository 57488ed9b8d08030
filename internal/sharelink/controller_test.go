package sharelink_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/domain"
	"tripmate/internal/gateway"
	"tripmate/internal/sharelink"
	"tripmate/internal/store"
)

// fakeGateway records every call and replies with canned values.
type fakeGateway struct {
	createCalls  int
	createID     string
	createErr    error
	lastSnapshot []domain.Place

	updateCalls int
	lastID      string
	lastPatch   domain.SharedTripPatch
	updateErr   error
}

func (f *fakeGateway) CreateTrip(_ context.Context, _ domain.TripInfo, places []domain.Place) (string, error) {
	f.createCalls++
	f.lastSnapshot = places
	return f.createID, f.createErr
}

func (f *fakeGateway) UpdateTrip(_ context.Context, id string, patch domain.SharedTripPatch) (gateway.SharedTrip, error) {
	f.updateCalls++
	f.lastID = id
	f.lastPatch = patch
	return gateway.SharedTrip{ID: id}, f.updateErr
}

func newController(t *testing.T, gw *fakeGateway) (*sharelink.Controller, *store.Store) {
	t.Helper()
	s := store.New(store.NewMemoryStorage())
	return sharelink.NewController(s, gw), s
}

func sessionURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestController_TripID(t *testing.T) {
	c, _ := newController(t, &fakeGateway{})

	id, ok := c.TripID(sessionURL(t, "https://app.example/plan?trip=abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = c.TripID(sessionURL(t, "https://app.example/plan"))
	assert.False(t, ok)
}

func TestController_Share_CreatesAndBinds(t *testing.T) {
	gw := &fakeGateway{createID: "trip-1"}
	c, s := newController(t, gw)
	s.AddPlace(domain.NewPlace{Name: "Marble Mountains", Category: domain.PlaceNature})

	u := sessionURL(t, "https://app.example/plan")
	res, err := c.Share(context.Background(), u)

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "trip-1", res.TripID)
	assert.Equal(t, "https://app.example/plan?trip=trip-1", res.URL)
	// The binding lands on the caller's URL so a reload stays linked.
	assert.Equal(t, "trip-1", u.Query().Get(sharelink.TripParam))
	require.Len(t, gw.lastSnapshot, 1)
	assert.Equal(t, "Marble Mountains", gw.lastSnapshot[0].Name)
}

// TestController_Share_ReusesBoundID verifies that sharing an already
// linked session never mints a second remote record.
func TestController_Share_ReusesBoundID(t *testing.T) {
	gw := &fakeGateway{createID: "trip-1"}
	c, _ := newController(t, gw)

	u := sessionURL(t, "https://app.example/plan?trip=trip-1")
	res, err := c.Share(context.Background(), u)

	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "trip-1", res.TripID)
	assert.Equal(t, 0, gw.createCalls)
}

func TestController_Share_FailureLeavesURLUnbound(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("boom")}
	c, _ := newController(t, gw)

	u := sessionURL(t, "https://app.example/plan")
	_, err := c.Share(context.Background(), u)

	require.Error(t, err)
	_, ok := c.TripID(u)
	assert.False(t, ok)
}

// TestController_Share_StripsSessionParams checks that only the trip
// parameter survives into the shareable link.
func TestController_Share_StripsSessionParams(t *testing.T) {
	gw := &fakeGateway{createID: "trip-1"}
	c, _ := newController(t, gw)

	u := sessionURL(t, "https://app.example/plan?tab=expenses&lang=zh")
	res, err := c.Share(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/plan?trip=trip-1", res.URL)
}

func TestController_Push_NotLinked(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newController(t, gw)
	u := sessionURL(t, "https://app.example/plan")

	assert.ErrorIs(t, c.PushPlaces(context.Background(), u), sharelink.ErrNotLinked)
	assert.ErrorIs(t, c.PushExpenses(context.Background(), u), sharelink.ErrNotLinked)
	assert.ErrorIs(t, c.PushItinerary(context.Background(), u), sharelink.ErrNotLinked)
	assert.Equal(t, 0, gw.updateCalls)
}

func TestController_PushPlaces(t *testing.T) {
	gw := &fakeGateway{}
	c, s := newController(t, gw)
	s.AddPlace(domain.NewPlace{Name: "Han Market", Category: domain.PlaceShopping})

	u := sessionURL(t, "https://app.example/plan?trip=trip-1")
	require.NoError(t, c.PushPlaces(context.Background(), u))

	assert.Equal(t, "trip-1", gw.lastID)
	require.True(t, gw.lastPatch.Places.Valid)
	assert.False(t, gw.lastPatch.Expenses.Valid)
	assert.False(t, gw.lastPatch.Itinerary.Valid)

	var pushed []domain.Place
	require.NoError(t, json.Unmarshal(gw.lastPatch.Places.Value, &pushed))
	require.Len(t, pushed, 1)
	assert.Equal(t, "Han Market", pushed[0].Name)
}

func TestController_PushExpenses(t *testing.T) {
	gw := &fakeGateway{}
	c, s := newController(t, gw)
	s.AddExpense(domain.NewExpense{Description: "lunch", Amount: 120000, Currency: "VND", Category: "food"})

	u := sessionURL(t, "https://app.example/plan?trip=trip-1")
	require.NoError(t, c.PushExpenses(context.Background(), u))

	require.True(t, gw.lastPatch.Expenses.Valid)
	var pushed []domain.Expense
	require.NoError(t, json.Unmarshal(gw.lastPatch.Expenses.Value, &pushed))
	require.Len(t, pushed, 1)
	assert.Equal(t, "lunch", pushed[0].Description)
}

// TestController_PushItinerary verifies only scheduled places are pushed,
// ordered by date then time.
func TestController_PushItinerary(t *testing.T) {
	gw := &fakeGateway{}
	c, s := newController(t, gw)
	s.AddPlace(domain.NewPlace{Name: "unscheduled", Category: domain.PlaceOther})
	s.AddPlace(domain.NewPlace{Name: "day2", Category: domain.PlaceFood, ScheduledDate: "2026-09-02", ScheduledTime: "12:00"})
	s.AddPlace(domain.NewPlace{Name: "day1-late", Category: domain.PlaceFood, ScheduledDate: "2026-09-01", ScheduledTime: "18:00"})
	s.AddPlace(domain.NewPlace{Name: "day1-early", Category: domain.PlaceCafe, ScheduledDate: "2026-09-01", ScheduledTime: "09:00"})

	u := sessionURL(t, "https://app.example/plan?trip=trip-1")
	require.NoError(t, c.PushItinerary(context.Background(), u))

	require.True(t, gw.lastPatch.Itinerary.Valid)
	var pushed []domain.Place
	require.NoError(t, json.Unmarshal(gw.lastPatch.Itinerary.Value, &pushed))
	require.Len(t, pushed, 3)
	assert.Equal(t, "day1-early", pushed[0].Name)
	assert.Equal(t, "day1-late", pushed[1].Name)
	assert.Equal(t, "day2", pushed[2].Name)
}

func TestController_PushItinerary_Empty(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newController(t, gw)

	u := sessionURL(t, "https://app.example/plan?trip=trip-1")
	require.NoError(t, c.PushItinerary(context.Background(), u))

	require.True(t, gw.lastPatch.Itinerary.Valid)
	assert.JSONEq(t, `[]`, string(gw.lastPatch.Itinerary.Value))
}
