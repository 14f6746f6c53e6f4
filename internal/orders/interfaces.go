package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
)

// Repository defines persistence operations for orders and their history.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*OrderList, error)
	ListAll(ctx context.Context, limit int) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error
}
