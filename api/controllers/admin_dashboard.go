package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/ayoubrebai/autoparts-backend/api/responses"
	"github.com/ayoubrebai/autoparts-backend/api/validators"
	"github.com/ayoubrebai/autoparts-backend/internal/analytics"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
)

type dashboardService interface {
	Dashboard(ctx context.Context) (*analytics.DashboardSnapshot, error)
}

type customersService interface {
	Customers(ctx context.Context, filter analytics.RosterFilter, sortBy analytics.SortKey) (*analytics.CustomerRosterView, error)
}

// AdminDashboard serves the aggregated stats plus recent orders and top
// customers in one payload.
func AdminDashboard(svc dashboardService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}
		snapshot, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

// AdminCustomers serves the derived customer roster.
func AdminCustomers(svc customersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		filter := analytics.RosterFilter{
			Query: validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLength),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParseCustomerStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer status"))
				return
			}
			filter.Status = &status
		}
		sortBy := analytics.ParseSortKey(strings.TrimSpace(r.URL.Query().Get("sortBy")))

		view, err := svc.Customers(r.Context(), filter, sortBy)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
