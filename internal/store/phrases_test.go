package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/domain"
)

func TestStore_PlaceTags_Defaults(t *testing.T) {
	s := newTestStore(t)

	tags := s.PlaceTags()
	assert.Len(t, tags, 5)
	assert.Contains(t, tags, "美食")
}

// TestStore_AddPlaceTag_Dedup verifies that adding an existing tag is a
// no-op: the vocabulary holds each tag once.
func TestStore_AddPlaceTag_Dedup(t *testing.T) {
	s := newTestStore(t)

	tags := s.AddPlaceTag("sunset")
	assert.Contains(t, tags, "sunset")
	count := len(tags)

	tags = s.AddPlaceTag("sunset")
	assert.Len(t, tags, count)
}

func TestStore_RemovePlaceTag(t *testing.T) {
	s := newTestStore(t)
	s.AddPlaceTag("sunset")

	tags := s.RemovePlaceTag("sunset")
	assert.NotContains(t, tags, "sunset")

	// Removing an absent tag is a no-op.
	again := s.RemovePlaceTag("sunset")
	assert.Equal(t, tags, again)
}

func TestStore_AddFavoritePhrase(t *testing.T) {
	s := newTestStore(t)

	got := s.AddFavoritePhrase(domain.NewFavoritePhrase{
		SourceText:     "thank you",
		TranslatedText: "cảm ơn",
		SourceLang:     "en",
		TargetLang:     "vi",
	})

	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.CreatedAt)

	phrases := s.FavoritePhrases()
	require.Len(t, phrases, 1)
	assert.Equal(t, got, phrases[0])
}

func TestStore_IsFavoritePhrase(t *testing.T) {
	s := newTestStore(t)
	s.AddFavoritePhrase(domain.NewFavoritePhrase{
		SourceText:     "where is the toilet",
		TranslatedText: "nhà vệ sinh ở đâu",
		SourceLang:     "en",
		TargetLang:     "vi",
	})

	assert.True(t, s.IsFavoritePhrase("where is the toilet", "vi"))
	// Same text toward a different language is a different phrase.
	assert.False(t, s.IsFavoritePhrase("where is the toilet", "ja"))
	assert.False(t, s.IsFavoritePhrase("hello", "vi"))
}

func TestStore_RemoveFavoritePhrase(t *testing.T) {
	s := newTestStore(t)
	added := s.AddFavoritePhrase(domain.NewFavoritePhrase{
		SourceText: "hello", TranslatedText: "xin chào", SourceLang: "en", TargetLang: "vi",
	})

	phrases := s.RemoveFavoritePhrase(added.ID)
	assert.Empty(t, phrases)
	assert.Empty(t, s.RemoveFavoritePhrase(added.ID))
}
