package store

import (
	"slices"

	"tripmate/internal/domain"
)

// defaultPlaceTags are the tags offered before the user has customized the
// list: must-go, food, photo spot, shopping, relax.
var defaultPlaceTags = []string{"必去", "美食", "拍照", "購物", "放鬆"}

// PlaceTags returns the user's tag vocabulary for places.
func (s *Store) PlaceTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.storage, keyPlaceTags, slices.Clone(defaultPlaceTags))
}

// AddPlaceTag appends tag to the vocabulary unless it is already present,
// and returns the resulting list.
func (s *Store) AddPlaceTag(tag string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := load(s.storage, keyPlaceTags, slices.Clone(defaultPlaceTags))
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	tags = append(tags, tag)
	save(s.storage, keyPlaceTags, tags)
	return tags
}

// RemovePlaceTag removes tag from the vocabulary and returns the result.
// Removing an absent tag is a no-op.
func (s *Store) RemovePlaceTag(tag string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := load(s.storage, keyPlaceTags, slices.Clone(defaultPlaceTags))
	kept := tags[:0]
	for _, t := range tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	save(s.storage, keyPlaceTags, kept)
	return kept
}

// FavoritePhrases returns every saved translation in insertion order.
func (s *Store) FavoritePhrases() []domain.FavoritePhrase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.storage, keyPhrases, []domain.FavoritePhrase{})
}

// AddFavoritePhrase assigns an id and creation timestamp, appends, and
// persists. The created phrase is returned.
func (s *Store) AddFavoritePhrase(p domain.NewFavoritePhrase) domain.FavoritePhrase {
	s.mu.Lock()
	defer s.mu.Unlock()

	phrase := domain.FavoritePhrase{
		ID:             domain.NewID(),
		SourceText:     p.SourceText,
		TranslatedText: p.TranslatedText,
		SourceLang:     p.SourceLang,
		TargetLang:     p.TargetLang,
		CreatedAt:      domain.Timestamp(s.now()),
	}

	phrases := load(s.storage, keyPhrases, []domain.FavoritePhrase{})
	phrases = append(phrases, phrase)
	save(s.storage, keyPhrases, phrases)
	return phrase
}

// RemoveFavoritePhrase removes the phrase with the given id and persists.
// Idempotent.
func (s *Store) RemoveFavoritePhrase(id string) []domain.FavoritePhrase {
	s.mu.Lock()
	defer s.mu.Unlock()

	phrases := load(s.storage, keyPhrases, []domain.FavoritePhrase{})
	kept := phrases[:0]
	for _, p := range phrases {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	save(s.storage, keyPhrases, kept)
	return kept
}

// IsFavoritePhrase reports whether a phrase with the given source text and
// target language has already been saved. The translator uses this to
// render the star toggle.
func (s *Store) IsFavoritePhrase(sourceText, targetLang string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range load(s.storage, keyPhrases, []domain.FavoritePhrase{}) {
		if p.SourceText == sourceText && p.TargetLang == targetLang {
			return true
		}
	}
	return false
}
