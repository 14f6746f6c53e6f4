package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
)

// reconcileTolerance absorbs rounding noise between the item sum and the
// stored total.
var reconcileTolerance = decimal.NewFromFloat(0.01)

// Mismatch flags an order whose line items no longer add up to its total.
type Mismatch struct {
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	ItemsTotal  float64 `json:"itemsTotal"`
	Expected    float64 `json:"expected"`
	Delta       float64 `json:"delta"`
}

// ReconcileOrder checks sum(quantity x price) against totalAmount minus
// shippingCost. It returns nil when the order is consistent.
func ReconcileOrder(order models.Order) *Mismatch {
	itemsTotal := order.ItemsTotal()
	expected := order.TotalAmount.Sub(order.ShippingCost)
	delta := itemsTotal.Sub(expected)
	if delta.Decimal.Abs().LessThanOrEqual(reconcileTolerance) {
		return nil
	}
	return &Mismatch{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		ItemsTotal:  itemsTotal.Float64(),
		Expected:    expected.Float64(),
		Delta:       delta.Float64(),
	}
}

// ReconcileOrders collects the mismatches across an order set.
func ReconcileOrders(orders []models.Order) []Mismatch {
	var mismatches []Mismatch
	for _, order := range orders {
		if mismatch := ReconcileOrder(order); mismatch != nil {
			mismatches = append(mismatches, *mismatch)
		}
	}
	return mismatches
}
