package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

func TestPriceString(t *testing.T) {
	assert.Equal(t, "12.50 TND", PriceString("12.5"))
	assert.Equal(t, "0.00 TND", PriceString("not-a-number"))
	assert.Equal(t, "0.00 TND", PriceString(""))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "199.90 TND", Price(types.NewAmount(199.9)))
	assert.Equal(t, "0.00 TND", Price(types.Amount{}))
}

func TestDateLayouts(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2026 09:05", DateTime(ts))
	assert.Equal(t, "07/03/26", CompactDate(ts))
}
