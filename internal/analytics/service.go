package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/redis"
)

const (
	dashboardCacheScope = "dashboard"
	recentOrdersCount   = 5
	topCustomersCount   = 5
)

// OrderSource is the slice of the orders repository the aggregation needs.
type OrderSource interface {
	ListAll(ctx context.Context, limit int) ([]models.Order, error)
}

// SnapshotCache is the slice of the redis client used for cached snapshots.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(scope string) string
}

// DashboardSnapshot is the full dashboard payload, cached as one unit.
type DashboardSnapshot struct {
	Stats        DashboardStats    `json:"stats"`
	RecentOrders []models.Order    `json:"recentOrders"`
	TopCustomers []DerivedCustomer `json:"topCustomers"`
	Mismatches   []Mismatch        `json:"mismatches,omitempty"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}

// RosterSummary totals the customers view header figures.
type RosterSummary struct {
	TotalCustomers    int `json:"totalCustomers"`
	VIPCustomers      int `json:"vipCustomers"`
	ActiveCustomers   int `json:"activeCustomers"`
	InactiveCustomers int `json:"inactiveCustomers"`
}

// CustomerRosterView is the customers endpoint payload.
type CustomerRosterView struct {
	Customers []DerivedCustomer `json:"customers"`
	Summary   RosterSummary     `json:"summary"`
}

// Service computes dashboard and customer views over the bulk order fetch,
// memoizing the dashboard snapshot in redis under a short TTL.
type Service struct {
	source OrderSource
	cache  SnapshotCache
	ttl    time.Duration
	limit  int
	logg   *logger.Logger
	now    func() time.Time
}

// NewService wires the aggregation service. cache may be nil; every request
// then recomputes.
func NewService(source OrderSource, cache SnapshotCache, ttl time.Duration, limit int, logg *logger.Logger) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("order source required")
	}
	return &Service{
		source: source,
		cache:  cache,
		ttl:    ttl,
		limit:  limit,
		logg:   logg,
		now:    time.Now,
	}, nil
}

// Dashboard returns the cached snapshot when fresh, otherwise recomputes it
// from the current order set.
func (s *Service) Dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	if cached := s.cachedSnapshot(ctx); cached != nil {
		return cached, nil
	}

	orders, err := s.source.ListAll(ctx, s.limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders for dashboard")
	}

	now := s.now()
	snapshot := &DashboardSnapshot{
		Stats:        ComputeDashboardStats(orders, now),
		RecentOrders: RecentOrders(orders, recentOrdersCount),
		TopCustomers: TopCustomers(orders, now, topCustomersCount),
		Mismatches:   ReconcileOrders(orders),
		GeneratedAt:  now,
	}
	s.storeSnapshot(ctx, snapshot)
	return snapshot, nil
}

// Customers computes the filtered, sorted roster plus its summary.
func (s *Service) Customers(ctx context.Context, filter RosterFilter, sortBy SortKey) (*CustomerRosterView, error) {
	orders, err := s.source.ListAll(ctx, s.limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load orders for customers")
	}

	roster := ComputeCustomerRoster(orders, s.now(), sortBy)
	summary := summarize(roster)
	return &CustomerRosterView{
		Customers: FilterRoster(roster, filter),
		Summary:   summary,
	}, nil
}

func summarize(roster []DerivedCustomer) RosterSummary {
	summary := RosterSummary{TotalCustomers: len(roster)}
	for _, customer := range roster {
		switch customer.Status {
		case enums.CustomerStatusVIP:
			summary.VIPCustomers++
		case enums.CustomerStatusActive:
			summary.ActiveCustomers++
		case enums.CustomerStatusInactive:
			summary.InactiveCustomers++
		}
	}
	return summary
}

func (s *Service) cachedSnapshot(ctx context.Context) *DashboardSnapshot {
	if s.cache == nil || s.ttl <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(dashboardCacheScope))
	if err != nil {
		if err != redis.Nil && s.logg != nil {
			s.logg.Warn(ctx, "dashboard cache read failed: "+err.Error())
		}
		return nil
	}
	var snapshot DashboardSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "dashboard cache payload corrupt, recomputing")
		}
		return nil
	}
	return &snapshot
}

func (s *Service) storeSnapshot(ctx context.Context, snapshot *DashboardSnapshot) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey(dashboardCacheScope), string(payload), s.ttl); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "dashboard cache write failed: "+err.Error())
	}
}
