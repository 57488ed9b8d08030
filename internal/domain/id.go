package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for a locally created entity.
// IDs are random UUIDs, so they are unique across devices without
// any coordination — two phones adding places offline never collide.
func NewID() string {
	return uuid.NewString()
}

// Timestamp formats t as the ISO-8601 string stored on entities
// (createdAt, expense date). Stored in UTC so values compare lexically.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
