package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// historyFailingRepo delegates to the real repository but fails the history
// append, simulating a partial persistence failure mid-transaction.
type historyFailingRepo struct {
	Repository
}

func (r historyFailingRepo) WithTx(tx *gorm.DB) Repository {
	return historyFailingRepo{Repository: r.Repository.WithTx(tx)}
}

func (r historyFailingRepo) AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	return errors.New("history write refused")
}

func countHistory(t *testing.T, db *gorm.DB, orderID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.StatusHistoryEntry{}).Where("order_id = ?", orderID).Count(&n).Error)
	return n
}

func TestServiceUpdateStatusAppendsHistory(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, gormTxRunner{db: db})
	require.NoError(t, err)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-6001", enums.OrderStatusPending, "rim@example.tn", 120, time.Now().UTC())

	notes := "confirmed by phone"
	updated, err := svc.UpdateStatus(ctx, UpdateStatusInput{
		OrderID: order.ID,
		Status:  enums.OrderStatusConfirmed,
		Notes:   &notes,
		Actor:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, updated.Status)
	require.Len(t, updated.StatusHistory, 1)
	assert.Equal(t, enums.OrderStatusConfirmed, updated.StatusHistory[0].Status)
	assert.Equal(t, "admin", updated.StatusHistory[0].CreatedBy)
	require.NotNil(t, updated.StatusHistory[0].Notes)
	assert.Equal(t, notes, *updated.StatusHistory[0].Notes)
}

func TestServiceUpdateStatusSameStatusIsNoOp(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, gormTxRunner{db: db})
	require.NoError(t, err)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-6002", enums.OrderStatusConfirmed, "rim@example.tn", 120, time.Now().UTC())

	updated, err := svc.UpdateStatus(ctx, UpdateStatusInput{
		OrderID: order.ID,
		Status:  enums.OrderStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, updated.Status)
	assert.EqualValues(t, 0, countHistory(t, db, order.ID))
}

func TestServiceUpdateStatusRejectsDisallowedTransition(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, gormTxRunner{db: db})
	require.NoError(t, err)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-6003", enums.OrderStatusPending, "rim@example.tn", 120, time.Now().UTC())

	_, err = svc.UpdateStatus(ctx, UpdateStatusInput{
		OrderID: order.ID,
		Status:  enums.OrderStatusDelivered,
	})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())
	assert.EqualValues(t, 0, countHistory(t, db, order.ID))
}

func TestServiceUpdateStatusValidation(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	svc, err := NewService(repo, gormTxRunner{db: db})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.UpdateStatus(ctx, UpdateStatusInput{Status: enums.OrderStatusConfirmed})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.UpdateStatus(ctx, UpdateStatusInput{
		OrderID: uuid.New(),
		Status:  enums.OrderStatus("ARCHIVED"),
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.UpdateStatus(ctx, UpdateStatusInput{
		OrderID: uuid.New(),
		Status:  enums.OrderStatusConfirmed,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceUpdateStatusRollsBackOnHistoryFailure(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := historyFailingRepo{Repository: NewRepository(db)}
	svc, err := NewService(repo, gormTxRunner{db: db})
	require.NoError(t, err)
	ctx := context.Background()

	order := seedOrder(t, db, "CMD-6004", enums.OrderStatusPending, "rim@example.tn", 120, time.Now().UTC())

	_, err = svc.UpdateStatus(ctx, UpdateStatusInput{
		OrderID: order.ID,
		Status:  enums.OrderStatusConfirmed,
	})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeDependency, appErr.Code())

	// both the status and the history log are untouched
	reloaded, err := NewRepository(db).FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, reloaded.Status)
	assert.EqualValues(t, 0, countHistory(t, db, order.ID))
}
