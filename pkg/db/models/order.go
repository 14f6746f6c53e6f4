package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

// Order is a storefront order created by checkout. After creation it is only
// mutated through status updates; the history log is append-only.
type Order struct {
	ID                uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber       string               `gorm:"column:order_number;not null;uniqueIndex" json:"orderNumber"`
	CustomerFirstName string               `gorm:"column:customer_first_name;not null" json:"customerFirstName"`
	CustomerLastName  string               `gorm:"column:customer_last_name;not null" json:"customerLastName"`
	CustomerEmail     string               `gorm:"column:customer_email;not null;index" json:"customerEmail"`
	CustomerPhone     string               `gorm:"column:customer_phone" json:"customerPhone"`
	Status            enums.OrderStatus    `gorm:"column:status;type:text;not null;default:'PENDING'" json:"status"`
	TotalAmount       types.Amount         `gorm:"column:total_amount;type:numeric(12,2);not null" json:"totalAmount"`
	ShippingCost      types.Amount         `gorm:"column:shipping_cost;type:numeric(12,2);not null;default:0" json:"shippingCost"`
	ShippingAddress   types.Address        `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	BillingAddress    types.Address        `gorm:"embedded;embeddedPrefix:billing_" json:"billingAddress"`
	OrderItems        []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems,omitempty"`
	StatusHistory     []StatusHistoryEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"statusHistory,omitempty"`
	CreatedAt         time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// ItemsTotal sums quantity x price across line items.
func (o Order) ItemsTotal() types.Amount {
	total := types.Amount{}
	for _, item := range o.OrderItems {
		total = total.Add(item.Price.MulInt(item.Quantity))
	}
	return total
}
