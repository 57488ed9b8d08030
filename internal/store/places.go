package store

import "tripmate/internal/domain"

// Places returns every place in insertion order.
// An empty (never non-nil-checked) slice is returned when none exist.
func (s *Store) Places() []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.storage, keyPlaces, []domain.Place{})
}

// AddPlace assigns an id and creation timestamp, appends the place, and
// persists the full collection. The created place is returned.
func (s *Store) AddPlace(p domain.NewPlace) domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	place := domain.Place{
		ID:            domain.NewID(),
		Name:          p.Name,
		Category:      p.Category,
		GoogleMapsURL: p.GoogleMapsURL,
		ScheduledDate: p.ScheduledDate,
		ScheduledTime: p.ScheduledTime,
		Completed:     p.Completed,
		IsFavorite:    p.IsFavorite,
		Notes:         p.Notes,
		CreatedAt:     domain.Timestamp(s.now()),
	}

	places := load(s.storage, keyPlaces, []domain.Place{})
	places = append(places, place)
	save(s.storage, keyPlaces, places)
	return place
}

// UpdatePlace merges the set fields of the update into the place with the
// given id and persists. A missing id is a valid outcome, not an error:
// the UI may race a delete against an update. The bool reports whether a
// place was actually updated; the returned slice is the resulting
// collection either way.
func (s *Store) UpdatePlace(id string, u domain.PlaceUpdate) ([]domain.Place, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	places := load(s.storage, keyPlaces, []domain.Place{})
	found := false
	for i := range places {
		if places[i].ID == id {
			u.Apply(&places[i])
			found = true
			break
		}
	}
	save(s.storage, keyPlaces, places)
	return places, found
}

// DeletePlace removes the place with the given id and persists.
// Deleting an absent id is a no-op, so delete is idempotent.
func (s *Store) DeletePlace(id string) []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	places := load(s.storage, keyPlaces, []domain.Place{})
	kept := places[:0]
	for _, p := range places {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	save(s.storage, keyPlaces, kept)
	return kept
}
