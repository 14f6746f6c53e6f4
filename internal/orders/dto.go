package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
)

// ListFilters describe the inputs supported by the admin orders list.
// Filters are conjunctive; empty fields match everything.
type ListFilters struct {
	Status   *enums.OrderStatus
	Query    string
	DateFrom *time.Time
	DateTo   *time.Time
}

// OrderList wraps one page of orders plus pagination metadata.
type OrderList struct {
	Orders     []models.Order    `json:"orders"`
	Pagination pagination.Result `json:"pagination"`
}

// UpdateStatusInput carries a requested status change plus audit metadata.
type UpdateStatusInput struct {
	OrderID uuid.UUID
	Status  enums.OrderStatus
	Notes   *string
	Actor   string
}
