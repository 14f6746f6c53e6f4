package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayoubrebai/autoparts-backend/api/controllers"
	"github.com/ayoubrebai/autoparts-backend/api/middleware"
	"github.com/ayoubrebai/autoparts-backend/internal/analytics"
	"github.com/ayoubrebai/autoparts-backend/internal/orders"
	"github.com/ayoubrebai/autoparts-backend/pkg/config"
	"github.com/ayoubrebai/autoparts-backend/pkg/db"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/redis"
)

// NewRouter wires the admin API surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	ordersRepo orders.Repository,
	ordersSvc orders.Service,
	analyticsSvc *analytics.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrders(ordersRepo, logg))
			r.Get("/{orderId}", controllers.AdminOrderDetail(ordersRepo, logg))
			r.Patch("/{orderId}", controllers.AdminUpdateOrderStatus(ordersSvc, logg))
		})
		r.Get("/dashboard", controllers.AdminDashboard(analyticsSvc, logg))
		r.Get("/customers", controllers.AdminCustomers(analyticsSvc, logg))
	})

	return r
}
