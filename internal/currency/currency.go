// Package currency converts amounts between the currencies the trip
// planner supports, using a static table of approximate rates.
//
// Rates are pairwise; when a pair is missing the conversion routes through
// the base currency (HKD). Arithmetic runs on decimals to avoid the float
// drift that compounds across a two-hop conversion, but amounts enter and
// leave as float64 so stored values keep their plain JSON number shape.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Base is the currency missing pairs are routed through.
const Base = "HKD"

// rates holds approximate exchange rates, keyed source → target.
var rates = map[string]map[string]float64{
	"HKD": {"VND": 3050, "USD": 0.128, "CNY": 0.92, "TWD": 4.1, "JPY": 19.2, "KRW": 170, "HKD": 1, "THB": 4.6},
	"VND": {"HKD": 0.00033, "USD": 0.000042, "CNY": 0.0003, "TWD": 0.0013, "JPY": 0.0063, "KRW": 0.056, "VND": 1, "THB": 0.0015},
	"USD": {"HKD": 7.82, "VND": 24000, "CNY": 7.2, "TWD": 32, "JPY": 150, "KRW": 1330, "USD": 1, "THB": 36},
	"JPY": {"HKD": 0.052, "VND": 160, "CNY": 0.048, "TWD": 0.21, "JPY": 1, "KRW": 8.8, "USD": 0.0067, "THB": 0.24},
	"THB": {"HKD": 0.22, "VND": 670, "CNY": 0.2, "TWD": 0.89, "JPY": 4.2, "KRW": 37, "USD": 0.028, "THB": 1},
	"KRW": {"HKD": 0.0059, "VND": 18, "CNY": 0.0054, "TWD": 0.024, "JPY": 0.113, "KRW": 1, "USD": 0.00075, "THB": 0.027},
	"TWD": {"HKD": 0.24, "VND": 750, "CNY": 0.22, "TWD": 1, "JPY": 4.7, "KRW": 42, "USD": 0.031, "THB": 1.13},
	"CNY": {"HKD": 1.09, "VND": 3320, "CNY": 1, "TWD": 4.5, "JPY": 21, "KRW": 185, "USD": 0.14, "THB": 5},
}

// destinationCurrencies maps destination name fragments (lowercase) to the
// currency the expense form should default to.
var destinationCurrencies = []struct {
	fragment string
	currency string
}{
	{"vietnam", "VND"}, {"da nang", "VND"}, {"hanoi", "VND"}, {"ho chi minh", "VND"},
	{"japan", "JPY"}, {"tokyo", "JPY"},
	{"korea", "KRW"}, {"seoul", "KRW"},
	{"thailand", "THB"}, {"bangkok", "THB"},
	{"taiwan", "TWD"}, {"taipei", "TWD"},
	{"hong kong", "HKD"},
	{"china", "CNY"},
	{"singapore", "USD"}, {"malaysia", "USD"},
}

// Convert returns amount expressed in the to currency.
// A known direct rate is used when available; otherwise the conversion
// routes from → Base → to, treating unknown legs as rate 1 so the result
// is always defined. Identity conversions return the amount unchanged.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	d := decimal.NewFromFloat(amount)
	if r, ok := rates[from][to]; ok {
		return d.Mul(decimal.NewFromFloat(r)).InexactFloat64()
	}
	toBase, ok := rates[from][Base]
	if !ok {
		toBase = 1
	}
	fromBase, ok := rates[Base][to]
	if !ok {
		fromBase = 1
	}
	return d.Mul(decimal.NewFromFloat(toBase)).Mul(decimal.NewFromFloat(fromBase)).InexactFloat64()
}

// ForDestination returns the currency to default new expenses to for the
// given trip destination, falling back to USD when no fragment matches.
func ForDestination(destination string) string {
	lower := strings.ToLower(destination)
	for _, dc := range destinationCurrencies {
		if strings.Contains(lower, dc.fragment) {
			return dc.currency
		}
	}
	return "USD"
}
