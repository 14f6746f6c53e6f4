package cron

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/ayoubrebai/autoparts-backend/internal/analytics"
	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/format"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
)

type orderLister interface {
	ListAll(ctx context.Context, limit int) ([]models.Order, error)
}

// ReconcileJobParams configure the order reconciliation audit.
type ReconcileJobParams struct {
	Logger *logger.Logger
	Orders orderLister
	Limit  int
}

// NewReconcileJob builds the job that cross-checks every order's line items
// against its stored total and flags the ones that drifted apart.
func NewReconcileJob(params ReconcileJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders lister required")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = pagination.MaxLimit
	}
	return &reconcileJob{
		logg:   params.Logger,
		orders: params.Orders,
		limit:  limit,
	}, nil
}

type reconcileJob struct {
	logg   *logger.Logger
	orders orderLister
	limit  int
}

func (j *reconcileJob) Name() string { return "order-reconcile" }

func (j *reconcileJob) Run(ctx context.Context) error {
	orders, err := j.orders.ListAll(ctx, j.limit)
	if err != nil {
		return fmt.Errorf("load orders for reconciliation: %w", err)
	}

	mismatches := analytics.ReconcileOrders(orders)
	var errs []error
	for _, mismatch := range mismatches {
		logCtx := j.logg.WithFields(ctx, map[string]any{
			"order_id":     mismatch.OrderID,
			"order_number": mismatch.OrderNumber,
			"items_total":  mismatch.ItemsTotal,
			"expected":     mismatch.Expected,
			"delta":        mismatch.Delta,
		})
		j.logg.Warn(logCtx, "order totals out of balance")
		errs = append(errs, fmt.Errorf("order %s out of balance by %s", mismatch.OrderNumber, format.PriceFloat(mismatch.Delta)))
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"checked": len(orders),
		"flagged": len(mismatches),
	})
	j.logg.Info(logCtx, "order reconciliation complete")
	return multierr.Combine(errs...)
}
