package domain

// PlaceCategory classifies a place to visit. Stored as its string value.
type PlaceCategory string

// Valid place categories.
const (
	PlaceFood       PlaceCategory = "food"
	PlaceAttraction PlaceCategory = "attraction"
	PlaceShopping   PlaceCategory = "shopping"
	PlaceCafe       PlaceCategory = "cafe"
	PlaceNightlife  PlaceCategory = "nightlife"
	PlaceNature     PlaceCategory = "nature"
	PlaceCulture    PlaceCategory = "culture"
	PlaceOther      PlaceCategory = "other"
)

// Place is one entry on the list of places to visit.
// ID is assigned at creation and never changes; it is the handle all
// update and delete operations use.
type Place struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Category      PlaceCategory `json:"category"`
	GoogleMapsURL string        `json:"googleMapsUrl"`
	ScheduledDate string        `json:"scheduledDate,omitempty"`
	ScheduledTime string        `json:"scheduledTime,omitempty"`
	Completed     bool          `json:"completed"`
	IsFavorite    bool          `json:"isFavorite"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     string        `json:"createdAt"`
}

// NewPlace carries the caller-supplied fields of a place about to be created.
// ID and CreatedAt are filled in by the store.
type NewPlace struct {
	Name          string
	Category      PlaceCategory
	GoogleMapsURL string
	ScheduledDate string
	ScheduledTime string
	Completed     bool
	IsFavorite    bool
	Notes         string
}

// PlaceUpdate is a partial update of a place. Nil fields are left
// unchanged; non-nil fields overwrite, including overwriting with the
// zero value (e.g. clearing a scheduled date with an empty string).
type PlaceUpdate struct {
	Name          *string
	Category      *PlaceCategory
	GoogleMapsURL *string
	ScheduledDate *string
	ScheduledTime *string
	Completed     *bool
	IsFavorite    *bool
	Notes         *string
}

// Apply merges the set fields of the update into p.
func (u PlaceUpdate) Apply(p *Place) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.GoogleMapsURL != nil {
		p.GoogleMapsURL = *u.GoogleMapsURL
	}
	if u.ScheduledDate != nil {
		p.ScheduledDate = *u.ScheduledDate
	}
	if u.ScheduledTime != nil {
		p.ScheduledTime = *u.ScheduledTime
	}
	if u.Completed != nil {
		p.Completed = *u.Completed
	}
	if u.IsFavorite != nil {
		p.IsFavorite = *u.IsFavorite
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
}
