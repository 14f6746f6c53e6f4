package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, filters ListFilters) (*OrderList, error) {
	params = pagination.Normalize(params)

	query := r.db.WithContext(ctx).Model(&models.Order{})
	query = applyFilters(query, filters)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var orders []models.Order
	err := query.
		Preload("OrderItems").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return &OrderList{
		Orders:     orders,
		Pagination: pagination.NewResult(params, total),
	}, nil
}

func (r *repository) ListAll(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 || limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func applyFilters(query *gorm.DB, filters ListFilters) *gorm.DB {
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where(
			"order_number LIKE ? OR LOWER(customer_first_name) LIKE LOWER(?) OR LOWER(customer_last_name) LIKE LOWER(?) OR LOWER(customer_email) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern,
		)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}
