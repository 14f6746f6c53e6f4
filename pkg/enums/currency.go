package enums

import "fmt"

// Currency represents supported monetary denominations for order totals.
type Currency string

const (
	CurrencyTND Currency = "TND"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// DefaultCurrency is the storefront's settlement currency.
const DefaultCurrency = CurrencyTND

var validCurrencies = []Currency{
	CurrencyTND,
	CurrencyEUR,
	CurrencyUSD,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
