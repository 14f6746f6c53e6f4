package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL UNIQUE,
  customer_first_name TEXT NOT NULL,
  customer_last_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT,
  status TEXT NOT NULL DEFAULT 'PENDING',
  total_amount NUMERIC NOT NULL,
  shipping_cost NUMERIC NOT NULL DEFAULT 0,
  shipping_address_line1 TEXT,
  shipping_address_line2 TEXT,
  shipping_city TEXT,
  shipping_postal_code TEXT,
  shipping_country TEXT,
  shipping_phone TEXT,
  billing_address_line1 TEXT,
  billing_address_line2 TEXT,
  billing_city TEXT,
  billing_postal_code TEXT,
  billing_country TEXT,
  billing_phone TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price NUMERIC NOT NULL,
  supplier TEXT,
  article_no TEXT,
  created_at DATETIME
);`
	statusHistory := `
CREATE TABLE IF NOT EXISTS status_history_entries (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  status TEXT NOT NULL,
  notes TEXT,
  created_by TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)
	require.NoError(t, db.Exec(statusHistory).Error)
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, number string, status enums.OrderStatus, email string, total float64, created time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:                uuid.New(),
		OrderNumber:       number,
		CustomerFirstName: "Ahmed",
		CustomerLastName:  "Ben Salah",
		CustomerEmail:     email,
		CustomerPhone:     "+216 20 123 456",
		Status:            status,
		TotalAmount:       types.NewAmount(total),
		ShippingCost:      types.NewAmount(7),
		ShippingAddress: types.Address{
			AddressLine1: "12 Rue de Carthage",
			City:         "Tunis",
			PostalCode:   "1000",
			Country:      "TN",
		},
		BillingAddress: types.Address{
			AddressLine1: "12 Rue de Carthage",
			City:         "Tunis",
			PostalCode:   "1000",
			Country:      "TN",
		},
		CreatedAt: created,
	}
	require.NoError(t, db.Create(order).Error)

	item := &models.OrderItem{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Name:      "Brake pads",
		Quantity:  2,
		Price:     types.NewAmount(45.50),
		Supplier:  "Bosch",
		ArticleNo: "0 986 494 104",
		CreatedAt: created,
	}
	require.NoError(t, db.Create(item).Error)
	order.OrderItems = []models.OrderItem{*item}
	return order
}

func TestRepositoryListFiltersAndPaginates(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		status := enums.OrderStatusPending
		if i%3 == 0 {
			status = enums.OrderStatusDelivered
		}
		seedOrder(t, db, fmt.Sprintf("CMD-10%02d", i), status,
			fmt.Sprintf("client%d@example.tn", i), 100+float64(i), base.Add(time.Duration(i)*time.Hour))
	}

	list, err := repo.List(ctx, pagination.Params{Page: 1, Limit: 10}, ListFilters{})
	require.NoError(t, err)
	assert.Len(t, list.Orders, 10)
	assert.EqualValues(t, 15, list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.TotalPages)
	// newest first
	assert.Equal(t, "CMD-1014", list.Orders[0].OrderNumber)
	require.NotEmpty(t, list.Orders[0].OrderItems)

	second, err := repo.List(ctx, pagination.Params{Page: 2, Limit: 10}, ListFilters{})
	require.NoError(t, err)
	assert.Len(t, second.Orders, 5)

	delivered := enums.OrderStatusDelivered
	byStatus, err := repo.List(ctx, pagination.Params{}, ListFilters{Status: &delivered})
	require.NoError(t, err)
	assert.EqualValues(t, 5, byStatus.Pagination.Total)
	for _, order := range byStatus.Orders {
		assert.Equal(t, enums.OrderStatusDelivered, order.Status)
	}

	byQuery, err := repo.List(ctx, pagination.Params{}, ListFilters{Query: "client7@"})
	require.NoError(t, err)
	require.Len(t, byQuery.Orders, 1)
	assert.Equal(t, "CMD-1007", byQuery.Orders[0].OrderNumber)

	byNumber, err := repo.List(ctx, pagination.Params{}, ListFilters{Query: "CMD-1003"})
	require.NoError(t, err)
	require.Len(t, byNumber.Orders, 1)

	from := base.Add(12 * time.Hour)
	to := base.Add(14 * time.Hour)
	byRange, err := repo.List(ctx, pagination.Params{}, ListFilters{DateFrom: &from, DateTo: &to})
	require.NoError(t, err)
	assert.EqualValues(t, 3, byRange.Pagination.Total)
}

func TestRepositoryListEndOfDayBoundIncludesSameDayOrders(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedOrder(t, db, "CMD-3001", enums.OrderStatusPending, "a@example.tn", 100,
		time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC))
	seedOrder(t, db, "CMD-3002", enums.OrderStatusPending, "b@example.tn", 100,
		time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC))

	// The bound a date-only endDate=2026-03-10 normalizes to.
	to := time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC)
	list, err := repo.List(ctx, pagination.Params{}, ListFilters{DateTo: &to})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "CMD-3001", list.Orders[0].OrderNumber)
}

func TestRepositoryListCaseInsensitiveSearch(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-2001", enums.OrderStatusPending, "Salma.Trabelsi@Example.TN", 250, time.Now().UTC())
	order.CustomerFirstName = "Salma"
	require.NoError(t, db.Model(order).Update("customer_first_name", "Salma").Error)

	list, err := repo.List(ctx, pagination.Params{}, ListFilters{Query: "salma"})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "CMD-2001", list.Orders[0].OrderNumber)
}

func TestRepositoryFindByIDPreloadsDetail(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-3001", enums.OrderStatusConfirmed, "amine@example.tn", 180, time.Now().UTC().Add(-time.Hour))

	older := &models.StatusHistoryEntry{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Status:    enums.OrderStatusPending,
		CreatedBy: "system",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	newer := &models.StatusHistoryEntry{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Status:    enums.OrderStatusConfirmed,
		CreatedBy: "admin",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.AppendHistory(ctx, older))
	require.NoError(t, repo.AppendHistory(ctx, newer))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "CMD-3001", found.OrderNumber)
	require.Len(t, found.OrderItems, 1)
	require.Len(t, found.StatusHistory, 2)
	// history comes back newest first for display
	assert.Equal(t, enums.OrderStatusConfirmed, found.StatusHistory[0].Status)
	assert.Equal(t, enums.OrderStatusPending, found.StatusHistory[1].Status)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-4001", enums.OrderStatusPending, "nour@example.tn", 90, time.Now().UTC())

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.OrderStatusConfirmed))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, found.Status)

	err = repo.UpdateStatus(ctx, uuid.New(), enums.OrderStatusConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListAllCapsLimit(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedOrder(t, db, fmt.Sprintf("CMD-50%02d", i), enums.OrderStatusPending,
			fmt.Sprintf("bulk%d@example.tn", i), 50, base.Add(time.Duration(i)*time.Minute))
	}

	all, err := repo.ListAll(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	capped, err := repo.ListAll(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, capped, 3)
}
