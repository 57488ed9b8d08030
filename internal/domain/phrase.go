package domain

// FavoritePhrase is a saved translation from the phrase translator.
type FavoritePhrase struct {
	ID             string `json:"id"`
	SourceText     string `json:"sourceText"`
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
	CreatedAt      string `json:"createdAt"`
}

// NewFavoritePhrase carries the caller-supplied fields of a phrase about
// to be saved. ID and CreatedAt are filled in by the store.
type NewFavoritePhrase struct {
	SourceText     string
	TranslatedText string
	SourceLang     string
	TargetLang     string
}
