package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
)

// StatusHistoryEntry records one status change on an order. The log is
// append-only and insertion-ordered; entries are never edited or removed.
type StatusHistoryEntry struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID         `gorm:"column:order_id;type:uuid;not null;index" json:"orderId"`
	Status    enums.OrderStatus `gorm:"column:status;type:text;not null" json:"status"`
	Notes     *string           `gorm:"column:notes" json:"notes,omitempty"`
	CreatedBy string            `gorm:"column:created_by;not null" json:"createdBy"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
