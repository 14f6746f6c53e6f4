package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ayoubrebai/autoparts-backend/internal/analytics"
	ordersrepo "github.com/ayoubrebai/autoparts-backend/internal/orders"
	"github.com/ayoubrebai/autoparts-backend/pkg/config"
	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubOrdersRepo struct{}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) ordersrepo.Repository {
	return s
}

func (s *stubOrdersRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	return order, nil
}

func (s *stubOrdersRepo) List(ctx context.Context, params pagination.Params, filters ordersrepo.ListFilters) (*ordersrepo.OrderList, error) {
	return &ordersrepo.OrderList{Pagination: pagination.NewResult(params, 0)}, nil
}

func (s *stubOrdersRepo) ListAll(ctx context.Context, limit int) ([]models.Order, error) {
	return nil, nil
}

func (s *stubOrdersRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrdersRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	return nil
}

func (s *stubOrdersRepo) AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	return nil
}

type stubOrdersService struct{}

func (stubOrdersService) UpdateStatus(ctx context.Context, input ordersrepo.UpdateStatusInput) (*models.Order, error) {
	return &models.Order{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "test", Port: "0"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	analyticsSvc, err := analytics.NewService(&stubOrdersRepo{}, nil, 0, 0, logg)
	if err != nil {
		t.Fatalf("build analytics service: %v", err)
	}
	return NewRouter(
		testConfig(),
		logg,
		stubPinger{},
		stubPinger{},
		&stubOrdersRepo{},
		stubOrdersService{},
		analyticsSvc,
	)
}

func TestRouterServesHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
		if got := resp.Header().Get("X-Autoparts-Env"); got != "test" {
			t.Fatalf("%s: expected env header, got %q", path, got)
		}
	}
}

func TestRouterAdminRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/admin/orders", http.StatusOK},
		{http.MethodGet, "/api/admin/orders/" + uuid.NewString(), http.StatusNotFound},
		{http.MethodGet, "/api/admin/dashboard", http.StatusOK},
		{http.MethodGet, "/api/admin/customers", http.StatusOK},
		{http.MethodGet, "/api/admin/unknown", http.StatusNotFound},
		{http.MethodDelete, "/api/admin/orders", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Fatalf("%s %s: expected %d got %d", tc.method, tc.path, tc.want, resp.Code)
		}
	}
}

func TestRouterUpdateStatusRoute(t *testing.T) {
	router := newTestRouter(t)

	body := `{"status":"CONFIRMED"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+uuid.NewString(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body %s", resp.Code, resp.Body.String())
	}
}
