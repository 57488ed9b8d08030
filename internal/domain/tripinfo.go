// Package domain contains the core data types for the trip planner.
// This package has no dependencies on storage or transport and is imported
// by every other internal package (store, gateway, repo, service, handler).
//
// Local entities (TripInfo, Place, Expense, ShoppingItem, FavoritePhrase)
// keep the exact JSON field names used by the persisted device-local data,
// so a value written by one version of the app round-trips through any other.
package domain

import "time"

// Accommodation is where the traveller stays for the trip.
type Accommodation struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	GoogleMapsURL string `json:"googleMapsUrl"`
}

// TripInfo is the per-session trip singleton: destination, travel dates,
// and accommodation. It is replaced wholesale on save, never merged.
// StartDate and EndDate are date-only ISO strings ("2006-01-02");
// callers are expected to keep StartDate <= EndDate but it is not enforced.
type TripInfo struct {
	Destination   string        `json:"destination"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Accommodation Accommodation `json:"accommodation"`
}

// DefaultTripInfo returns the trip created on first access, before the
// user has saved anything: a one-week trip starting today.
func DefaultTripInfo(now time.Time) TripInfo {
	return TripInfo{
		Destination: "Da Nang, Vietnam",
		StartDate:   now.Format("2006-01-02"),
		EndDate:     now.AddDate(0, 0, 7).Format("2006-01-02"),
		Accommodation: Accommodation{
			Name:          "Your Hotel",
			Address:       "Da Nang, Vietnam",
			GoogleMapsURL: "https://maps.google.com/?q=Da+Nang+Vietnam",
		},
	}
}

// CurrencySettings is the expense ledger's currency singleton: the currency
// totals are reported in (base), the destination currency amounts are usually
// entered in (target), and the last-known base→target rate.
type CurrencySettings struct {
	BaseCurrency   string  `json:"baseCurrency"`
	TargetCurrency string  `json:"targetCurrency"`
	Rate           float64 `json:"rate"`
}

// DefaultCurrencySettings returns the settings used before the user has
// picked their own currencies.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{BaseCurrency: "HKD", TargetCurrency: "VND", Rate: 3050}
}
