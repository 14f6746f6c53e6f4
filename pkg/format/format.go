package format

import (
	"time"

	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

// Monetary values render with a fixed two-decimal amount and the settlement
// currency suffix, no locale-aware thousands separators.
var currencySuffix = " " + enums.DefaultCurrency.String()

// Display layouts used across admin payloads.
const (
	DateTimeLayout    = "02/01/2006 15:04"
	CompactDateLayout = "02/01/06"
)

// Price renders an amount as "12.50 TND".
func Price(a types.Amount) string {
	return a.StringFixed(2) + currencySuffix
}

// PriceString renders a numeric-like string, falling back to "0.00 TND" when
// the input does not parse.
func PriceString(raw string) string {
	return Price(types.ParseAmount(raw))
}

// PriceFloat renders a float amount.
func PriceFloat(v float64) string {
	return Price(types.NewAmount(v))
}

// DateTime renders the detail-view timestamp.
func DateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// CompactDate renders the list-view date.
func CompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}
