package store

import (
	"tripmate/internal/currency"
	"tripmate/internal/domain"
)

// Expenses returns every expense. Order is insertion order unless the
// caller has explicitly reordered entries with MoveExpense.
func (s *Store) Expenses() []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.storage, keyExpenses, []domain.Expense{})
}

// AddExpense assigns an id, stamps the date when the caller left it empty,
// computes the amount in the base currency from the current rate table,
// appends, and persists. The converted amount is fixed at creation time
// and never recalculated.
func (s *Store) AddExpense(e domain.NewExpense) domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := e.Date
	if date == "" {
		date = domain.Timestamp(s.now())
	}

	base := s.currencySettingsLocked().BaseCurrency
	converted := currency.Convert(e.Amount, e.Currency, base)

	expense := domain.Expense{
		ID:              domain.NewID(),
		Description:     e.Description,
		Amount:          e.Amount,
		Currency:        e.Currency,
		Category:        e.Category,
		Date:            date,
		ConvertedAmount: &converted,
	}

	expenses := load(s.storage, keyExpenses, []domain.Expense{})
	expenses = append(expenses, expense)
	save(s.storage, keyExpenses, expenses)
	return expense
}

// UpdateExpense merges the set fields of the update into the expense with
// the given id and persists. A missing id is a silent no-op reported via
// the bool, matching UpdatePlace.
func (s *Store) UpdateExpense(id string, u domain.ExpenseUpdate) ([]domain.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := load(s.storage, keyExpenses, []domain.Expense{})
	found := false
	for i := range expenses {
		if expenses[i].ID == id {
			u.Apply(&expenses[i])
			found = true
			break
		}
	}
	save(s.storage, keyExpenses, expenses)
	return expenses, found
}

// DeleteExpense removes the expense with the given id and persists.
// Idempotent: deleting an absent id is a no-op.
func (s *Store) DeleteExpense(id string) []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := load(s.storage, keyExpenses, []domain.Expense{})
	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	save(s.storage, keyExpenses, kept)
	return kept
}

// MoveExpense moves the expense with the given id to toIndex, shifting the
// entries between the old and new position. toIndex is clamped to the
// collection bounds. The bool reports whether the id was found.
func (s *Store) MoveExpense(id string, toIndex int) ([]domain.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := load(s.storage, keyExpenses, []domain.Expense{})
	from := -1
	for i := range expenses {
		if expenses[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return expenses, false
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(expenses)-1 {
		toIndex = len(expenses) - 1
	}

	moved := expenses[from]
	expenses = append(expenses[:from], expenses[from+1:]...)
	expenses = append(expenses[:toIndex], append([]domain.Expense{moved}, expenses[toIndex:]...)...)

	save(s.storage, keyExpenses, expenses)
	return expenses, true
}
