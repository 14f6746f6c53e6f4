package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

// OrderItem is the immutable snapshot of one part line within an order.
type OrderItem struct {
	ID        uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID    `gorm:"column:order_id;type:uuid;not null;index" json:"orderId"`
	Name      string       `gorm:"column:name;not null" json:"name"`
	Quantity  int          `gorm:"column:quantity;not null" json:"quantity"`
	Price     types.Amount `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Supplier  string       `gorm:"column:supplier" json:"supplier"`
	ArticleNo string       `gorm:"column:article_no" json:"articleNo"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
