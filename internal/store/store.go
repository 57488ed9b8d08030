package store

import (
	"encoding/json"
	"sync"
	"time"

	"tripmate/internal/domain"
)

// Keys under which each collection is persisted. One JSON value per key.
const (
	keyTripInfo  = "trip_info"
	keyPlaces    = "places"
	keyExpenses  = "expenses"
	keyShopping  = "shopping_items"
	keyCurrency  = "currency_settings"
	keyPlaceTags = "place_tags"
	keyPhrases   = "favorite_phrases"
)

// Store provides synchronous CRUD access to the local trip collections.
// All operations fully persist before returning, so within one session a
// read always observes every prior write. Mutations serialize the entire
// collection on every call — this is a small per-device dataset, not a log.
//
// A mutex guards read-modify-write sequences so the store is safe to share
// across goroutines, though a UI event loop will typically call it from one.
type Store struct {
	mu      sync.Mutex
	storage Storage
	now     func() time.Time
}

// New returns a Store persisting through storage.
func New(storage Storage) *Store {
	return &Store{storage: storage, now: time.Now}
}

// load reads and decodes the value under key, resolving absence or a
// corrupt value to fallback. It never fails.
func load[T any](s Storage, key string, fallback T) T {
	raw, ok := s.Get(key)
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// save encodes v and persists it under key. Values are plain structs and
// slices, so encoding cannot fail; a Storage implementation absorbs any
// write failure of its own.
func save[T any](s Storage, key string, v T) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.Set(key, string(b))
}

// TripInfo returns the trip singleton, creating the default on first
// access or whenever the stored value is unreadable.
func (s *Store) TripInfo() domain.TripInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.storage, keyTripInfo, domain.DefaultTripInfo(s.now()))
}

// SaveTripInfo unconditionally replaces the trip singleton.
func (s *Store) SaveTripInfo(info domain.TripInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	save(s.storage, keyTripInfo, info)
}

// CurrencySettings returns the currency singleton, falling back to the
// default base/target pair when nothing has been saved.
func (s *Store) CurrencySettings() domain.CurrencySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currencySettingsLocked()
}

// SaveCurrencySettings unconditionally replaces the currency singleton.
// Existing expenses keep the converted amounts computed when they were
// added; a changed base currency only affects future entries.
func (s *Store) SaveCurrencySettings(settings domain.CurrencySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	save(s.storage, keyCurrency, settings)
}

func (s *Store) currencySettingsLocked() domain.CurrencySettings {
	return load(s.storage, keyCurrency, domain.DefaultCurrencySettings())
}
