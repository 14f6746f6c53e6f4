package analytics

import (
	"time"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

// DashboardStats aggregates the admin dashboard figures from a raw order set.
// Every field is derived on the fly; nothing here is persisted.
type DashboardStats struct {
	TotalOrders       int     `json:"totalOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalCustomers    int     `json:"totalCustomers"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	OrdersThisMonth   int     `json:"ordersThisMonth"`
	OrdersLastMonth   int     `json:"ordersLastMonth"`
	RevenueThisMonth  float64 `json:"revenueThisMonth"`
	RevenueLastMonth  float64 `json:"revenueLastMonth"`
	OrderGrowth       float64 `json:"orderGrowth"`
	RevenueGrowth     float64 `json:"revenueGrowth"`
}

// ComputeDashboardStats runs a single pass over the orders. Month buckets use
// calendar-month granularity in the timezone of now.
func ComputeDashboardStats(orders []models.Order, now time.Time) DashboardStats {
	stats := DashboardStats{TotalOrders: len(orders)}

	thisYear, thisMonth := now.Year(), now.Month()
	// First of the previous month; time.Date normalizes Month()-1 in January,
	// while AddDate would roll a month-end day past short months.
	lastMonthRef := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	lastYear, lastMonth := lastMonthRef.Year(), lastMonthRef.Month()

	revenue := types.Amount{}
	revenueThisMonth := types.Amount{}
	revenueLastMonth := types.Amount{}
	customers := make(map[string]struct{})

	for _, order := range orders {
		if order.Status.IsOpen() {
			stats.PendingOrders++
		}
		if order.Status == enums.OrderStatusDelivered {
			stats.CompletedOrders++
		}
		revenue = revenue.Add(order.TotalAmount)
		customers[NormalizeEmail(order.CustomerEmail)] = struct{}{}

		created := order.CreatedAt.In(now.Location())
		switch {
		case created.Year() == thisYear && created.Month() == thisMonth:
			stats.OrdersThisMonth++
			revenueThisMonth = revenueThisMonth.Add(order.TotalAmount)
		case created.Year() == lastYear && created.Month() == lastMonth:
			stats.OrdersLastMonth++
			revenueLastMonth = revenueLastMonth.Add(order.TotalAmount)
		}
	}

	stats.TotalRevenue = revenue.Float64()
	stats.RevenueThisMonth = revenueThisMonth.Float64()
	stats.RevenueLastMonth = revenueLastMonth.Float64()
	stats.TotalCustomers = len(customers)
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	stats.OrderGrowth = GrowthPercentage(float64(stats.OrdersThisMonth), float64(stats.OrdersLastMonth))
	stats.RevenueGrowth = GrowthPercentage(stats.RevenueThisMonth, stats.RevenueLastMonth)
	return stats
}

// GrowthPercentage compares a metric across two periods. Negative results
// mean decline and keep their sign.
func GrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
