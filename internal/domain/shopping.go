package domain

// ShoppingItem is one entry on the trip's shopping checklist.
// ImageURL may be a remote URL or a data URI captured from the camera.
type ShoppingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"purchased"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// NewShoppingItem carries the caller-supplied fields of a shopping item
// about to be created. Quantity below 1 is raised to 1 by the store.
type NewShoppingItem struct {
	Name     string
	Quantity int
	ImageURL string
	Notes    string
}

// ShoppingItemUpdate is a partial update of a shopping item.
// Nil fields are left unchanged.
type ShoppingItemUpdate struct {
	Name      *string
	Quantity  *int
	Purchased *bool
	ImageURL  *string
	Notes     *string
}

// Apply merges the set fields of the update into i.
// A quantity below 1 is raised to 1, matching creation.
func (u ShoppingItemUpdate) Apply(i *ShoppingItem) {
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.Quantity != nil {
		i.Quantity = *u.Quantity
		if i.Quantity < 1 {
			i.Quantity = 1
		}
	}
	if u.Purchased != nil {
		i.Purchased = *u.Purchased
	}
	if u.ImageURL != nil {
		i.ImageURL = *u.ImageURL
	}
	if u.Notes != nil {
		i.Notes = *u.Notes
	}
}
