package store

import "tripmate/internal/domain"

// ShoppingItems returns every shopping item in insertion order.
func (s *Store) ShoppingItems() []domain.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.storage, keyShopping, []domain.ShoppingItem{})
}

// AddShoppingItem assigns an id, appends the item, and persists.
// A quantity below 1 is raised to 1.
func (s *Store) AddShoppingItem(it domain.NewShoppingItem) domain.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := it.Quantity
	if qty < 1 {
		qty = 1
	}
	item := domain.ShoppingItem{
		ID:       domain.NewID(),
		Name:     it.Name,
		Quantity: qty,
		ImageURL: it.ImageURL,
		Notes:    it.Notes,
	}

	items := load(s.storage, keyShopping, []domain.ShoppingItem{})
	items = append(items, item)
	save(s.storage, keyShopping, items)
	return item
}

// UpdateShoppingItem merges the set fields of the update into the item
// with the given id and persists. A missing id is a silent no-op reported
// via the bool.
func (s *Store) UpdateShoppingItem(id string, u domain.ShoppingItemUpdate) ([]domain.ShoppingItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := load(s.storage, keyShopping, []domain.ShoppingItem{})
	found := false
	for i := range items {
		if items[i].ID == id {
			u.Apply(&items[i])
			found = true
			break
		}
	}
	save(s.storage, keyShopping, items)
	return items, found
}

// DeleteShoppingItem removes the item with the given id and persists.
// Idempotent.
func (s *Store) DeleteShoppingItem(id string) []domain.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := load(s.storage, keyShopping, []domain.ShoppingItem{})
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	save(s.storage, keyShopping, kept)
	return kept
}
