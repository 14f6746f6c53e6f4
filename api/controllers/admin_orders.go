package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/api/responses"
	"github.com/ayoubrebai/autoparts-backend/api/validators"
	internalorders "github.com/ayoubrebai/autoparts-backend/internal/orders"
	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
)

const maxSearchLength = 200

type ordersRepository interface {
	List(ctx context.Context, params pagination.Params, filters internalorders.ListFilters) (*internalorders.OrderList, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type orderStatusUpdater interface {
	UpdateStatus(ctx context.Context, input internalorders.UpdateStatusInput) (*models.Order, error)
}

// AdminOrders returns the paginated, filterable order list.
func AdminOrders(repo ordersRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := internalorders.ListFilters{
			Query: validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLength),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParseOrderStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filters.Status = &status
		}
		startDate, err := validators.ParseQueryDate(r, "startDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		endDate, err := validators.ParseQueryDateEnd(r, "endDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.DateFrom = startDate
		filters.DateTo = endDate

		list, err := repo.List(r.Context(), pagination.Params{Page: page, Limit: limit}, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders"))
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminOrderDetail returns one order with items, addresses and history.
func AdminOrderDetail(repo ordersRepository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
			return
		}

		orderID, err := orderIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := repo.FindByID(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch order"))
			return
		}
		responses.WriteSuccess(w, orderPayload{Order: order})
	}
}

// UpdateOrderStatusRequest is the PATCH body for a status change.
type UpdateOrderStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

// AdminUpdateOrderStatus moves an order through its lifecycle and appends the
// history entry.
func AdminUpdateOrderStatus(svc orderStatusUpdater, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := orderIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body UpdateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseOrderStatus(strings.TrimSpace(body.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, orderID.String())
		}

		order, err := svc.UpdateStatus(ctx, internalorders.UpdateStatusInput{
			OrderID: orderID,
			Status:  status,
			Notes:   body.Notes,
			Actor:   "admin",
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, orderPayload{Order: order})
	}
}

// orderPayload wraps a single order under its top-level key.
type orderPayload struct {
	Order *models.Order `json:"order"`
}

func orderIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	orderID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id")
	}
	return orderID, nil
}
