package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

func reconcileOrder(number string, total, shipping float64, items ...models.OrderItem) models.Order {
	return models.Order{
		ID:           uuid.New(),
		OrderNumber:  number,
		TotalAmount:  types.NewAmount(total),
		ShippingCost: types.NewAmount(shipping),
		OrderItems:   items,
	}
}

func TestReconcileOrderConsistent(t *testing.T) {
	order := reconcileOrder("CMD-1", 107, 7,
		models.OrderItem{Quantity: 2, Price: types.NewAmount(25)},
		models.OrderItem{Quantity: 1, Price: types.NewAmount(50)},
	)
	assert.Nil(t, ReconcileOrder(order))
}

func TestReconcileOrderWithinTolerance(t *testing.T) {
	order := reconcileOrder("CMD-2", 100.01, 0,
		models.OrderItem{Quantity: 1, Price: types.NewAmount(100)},
	)
	assert.Nil(t, ReconcileOrder(order))
}

func TestReconcileOrderFlagsMismatch(t *testing.T) {
	order := reconcileOrder("CMD-3", 120, 7,
		models.OrderItem{Quantity: 1, Price: types.NewAmount(100)},
	)
	mismatch := ReconcileOrder(order)
	require.NotNil(t, mismatch)
	assert.Equal(t, "CMD-3", mismatch.OrderNumber)
	assert.InDelta(t, 100, mismatch.ItemsTotal, 0.001)
	assert.InDelta(t, 113, mismatch.Expected, 0.001)
	assert.InDelta(t, -13, mismatch.Delta, 0.001)
}

func TestReconcileOrders(t *testing.T) {
	orders := []models.Order{
		reconcileOrder("CMD-4", 50, 0, models.OrderItem{Quantity: 1, Price: types.NewAmount(50)}),
		reconcileOrder("CMD-5", 60, 0, models.OrderItem{Quantity: 1, Price: types.NewAmount(50)}),
	}
	mismatches := ReconcileOrders(orders)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "CMD-5", mismatches[0].OrderNumber)
}
