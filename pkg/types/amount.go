package types

import (
	"bytes"
	"database/sql/driver"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative currency value stored as numeric(12,2).
//
// Checkout payloads from the legacy storefront sometimes carry prices as
// quoted numeric strings; decoding is lenient and falls back to zero instead
// of failing the whole record, so rendered output never contains NaN.
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from a float, rounding to 2 decimal places.
func NewAmount(value float64) Amount {
	return Amount{decimal.NewFromFloat(value).Round(2)}
}

// AmountFromDecimal wraps an existing decimal value.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// ParseAmount parses a numeric-like string, returning zero on failure.
func ParseAmount(value string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Amount{decimal.Zero}
	}
	return Amount{d}
}

// Float64 returns the closest float64 representation.
func (a Amount) Float64() float64 {
	return a.Decimal.InexactFloat64()
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// MulInt returns a multiplied by an integer quantity.
func (a Amount) MulInt(qty int) Amount {
	return Amount{a.Decimal.Mul(decimal.NewFromInt(int64(qty)))}
}

// MarshalJSON encodes the amount as a bare JSON number with 2 decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string. Garbage
// input coerces to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	if raw[0] == '"' {
		raw = bytes.Trim(raw, `"`)
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.Value()
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(value any) error {
	return a.Decimal.Scan(value)
}
