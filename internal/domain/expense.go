package domain

// ExpenseCategory classifies an expense. Stored as its string value.
type ExpenseCategory string

// Valid expense categories.
const (
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseEntertainment ExpenseCategory = "entertainment"
	ExpenseOther         ExpenseCategory = "other"
)

// Expense is one entry in the trip's expense ledger.
// ConvertedAmount is the amount expressed in the base currency, computed
// once at creation time from the rate table. It is deliberately not
// recalculated when rates or the base currency later change — the ledger
// records what the expense cost at the time it was logged.
type Expense struct {
	ID              string          `json:"id"`
	Description     string          `json:"description"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	Category        ExpenseCategory `json:"category"`
	Date            string          `json:"date"`
	ConvertedAmount *float64        `json:"convertedAmount,omitempty"`
}

// NewExpense carries the caller-supplied fields of an expense about to be
// created. ID, Date (when empty), and ConvertedAmount are filled in by the
// store.
type NewExpense struct {
	Description string
	Amount      float64
	Currency    string
	Category    ExpenseCategory
	Date        string
}

// ExpenseUpdate is a partial update of an expense. Nil fields are left
// unchanged. ConvertedAmount is intentionally absent: it is fixed at
// creation time.
type ExpenseUpdate struct {
	Description *string
	Amount      *float64
	Currency    *string
	Category    *ExpenseCategory
	Date        *string
}

// Apply merges the set fields of the update into e.
func (u ExpenseUpdate) Apply(e *Expense) {
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Currency != nil {
		e.Currency = *u.Currency
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
}
