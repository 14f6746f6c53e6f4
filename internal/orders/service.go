package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines order-level operations beyond repository reads.
type Service interface {
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Order, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// UpdateStatus moves an order to a new lifecycle status. The status overwrite
// and the history append happen in one transaction; a repeated status is a
// no-op that leaves the history untouched.
func (s *service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Order, error) {
	if input.OrderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("status must be one of %s", strings.Join(allStatuses(), ", ")))
	}

	actor := strings.TrimSpace(input.Actor)
	if actor == "" {
		actor = "admin"
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := repo.FindByID(ctx, input.OrderID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		if order.Status == input.Status {
			return nil
		}
		if !CanTransition(order.Status, input.Status) {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot move order from %s to %s", order.Status, input.Status))
		}

		if err := repo.UpdateStatus(ctx, order.ID, input.Status); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}
		entry := &models.StatusHistoryEntry{
			ID:        uuid.New(),
			OrderID:   order.ID,
			Status:    input.Status,
			Notes:     input.Notes,
			CreatedBy: actor,
		}
		if err := repo.AppendHistory(ctx, entry); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append status history")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
	}
	return order, nil
}

func allStatuses() []string {
	statuses := enums.OrderStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
