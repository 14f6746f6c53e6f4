package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ayoubrebai/autoparts-backend/pkg/db/models"
	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
	"github.com/ayoubrebai/autoparts-backend/pkg/types"
)

const (
	// vipSpendThreshold is the lifetime spend above which a customer is vip.
	vipSpendThreshold = 1000
	// inactiveAfterDays is how long without an order makes a customer inactive.
	inactiveAfterDays = 90
)

// DerivedCustomer is computed from the order set on every run, keyed by
// normalized email. It is never persisted.
type DerivedCustomer struct {
	Email             string               `json:"email"`
	FirstName         string               `json:"firstName"`
	LastName          string               `json:"lastName"`
	Phone             string               `json:"phone"`
	TotalOrders       int                  `json:"totalOrders"`
	TotalSpent        float64              `json:"totalSpent"`
	AverageOrderValue float64              `json:"averageOrderValue"`
	FirstOrderDate    time.Time            `json:"firstOrderDate"`
	LastOrderDate     time.Time            `json:"lastOrderDate"`
	Status            enums.CustomerStatus `json:"status"`
}

// SortKey selects the roster ordering.
type SortKey string

const (
	SortBySpent  SortKey = "spent"
	SortByOrders SortKey = "orders"
	SortByName   SortKey = "name"
	SortByRecent SortKey = "recent"
)

// ParseSortKey maps raw query input to a SortKey, defaulting to spent.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortByOrders, SortByName, SortByRecent:
		return SortKey(value)
	default:
		return SortBySpent
	}
}

// RosterFilter narrows the roster. Query and Status combine conjunctively.
type RosterFilter struct {
	Query  string
	Status *enums.CustomerStatus
}

// NormalizeEmail lowers and trims an email so one mailbox yields one customer.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ComputeCustomerRoster groups orders by normalized email, accumulates the
// per-customer figures and classifies each customer. The result is
// deterministic for any permutation of the input.
func ComputeCustomerRoster(orders []models.Order, now time.Time, sortBy SortKey) []DerivedCustomer {
	type accumulator struct {
		customer DerivedCustomer
		spent    types.Amount
	}
	groups := make(map[string]*accumulator)

	for _, order := range orders {
		key := NormalizeEmail(order.CustomerEmail)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{customer: DerivedCustomer{
				Email:          key,
				FirstName:      order.CustomerFirstName,
				LastName:       order.CustomerLastName,
				Phone:          order.CustomerPhone,
				FirstOrderDate: order.CreatedAt,
				LastOrderDate:  order.CreatedAt,
			}}
			groups[key] = acc
		}
		acc.customer.TotalOrders++
		acc.spent = acc.spent.Add(order.TotalAmount)
		if order.CreatedAt.Before(acc.customer.FirstOrderDate) {
			acc.customer.FirstOrderDate = order.CreatedAt
		}
		if order.CreatedAt.After(acc.customer.LastOrderDate) {
			acc.customer.LastOrderDate = order.CreatedAt
			acc.customer.FirstName = order.CustomerFirstName
			acc.customer.LastName = order.CustomerLastName
			acc.customer.Phone = order.CustomerPhone
		}
	}

	roster := make([]DerivedCustomer, 0, len(groups))
	for _, acc := range groups {
		customer := acc.customer
		customer.TotalSpent = acc.spent.Float64()
		customer.AverageOrderValue = customer.TotalSpent / float64(customer.TotalOrders)
		customer.Status = classify(acc.spent, customer.LastOrderDate, now)
		roster = append(roster, customer)
	}

	sortRoster(roster, sortBy)
	return roster
}

func classify(spent types.Amount, lastOrder time.Time, now time.Time) enums.CustomerStatus {
	if spent.Decimal.GreaterThan(decimal.NewFromInt(vipSpendThreshold)) {
		return enums.CustomerStatusVIP
	}
	if now.Sub(lastOrder) > inactiveAfterDays*24*time.Hour {
		return enums.CustomerStatusInactive
	}
	return enums.CustomerStatusActive
}

func sortRoster(roster []DerivedCustomer, sortBy SortKey) {
	// email ascending breaks ties so map iteration order never leaks through
	less := func(a, b DerivedCustomer) bool {
		switch sortBy {
		case SortByOrders:
			if a.TotalOrders != b.TotalOrders {
				return a.TotalOrders > b.TotalOrders
			}
		case SortByName:
			an := a.FirstName + " " + a.LastName
			bn := b.FirstName + " " + b.LastName
			if an != bn {
				return an < bn
			}
		case SortByRecent:
			if !a.LastOrderDate.Equal(b.LastOrderDate) {
				return a.LastOrderDate.After(b.LastOrderDate)
			}
		default:
			if a.TotalSpent != b.TotalSpent {
				return a.TotalSpent > b.TotalSpent
			}
		}
		return a.Email < b.Email
	}
	sort.SliceStable(roster, func(i, j int) bool { return less(roster[i], roster[j]) })
}

// FilterRoster applies the conjunctive customers-view predicate: free text
// matches first name, last name or email case-insensitively, or the phone by
// exact-case substring; the optional status must match exactly.
func FilterRoster(roster []DerivedCustomer, filter RosterFilter) []DerivedCustomer {
	query := strings.TrimSpace(filter.Query)
	lowered := strings.ToLower(query)

	out := make([]DerivedCustomer, 0, len(roster))
	for _, customer := range roster {
		if query != "" {
			textMatch := strings.Contains(strings.ToLower(customer.FirstName), lowered) ||
				strings.Contains(strings.ToLower(customer.LastName), lowered) ||
				strings.Contains(customer.Email, lowered)
			phoneMatch := strings.Contains(customer.Phone, query)
			if !textMatch && !phoneMatch {
				continue
			}
		}
		if filter.Status != nil && customer.Status != *filter.Status {
			continue
		}
		out = append(out, customer)
	}
	return out
}

// TopCustomers returns the n biggest spenders.
func TopCustomers(orders []models.Order, now time.Time, n int) []DerivedCustomer {
	roster := ComputeCustomerRoster(orders, now, SortBySpent)
	if n >= 0 && len(roster) > n {
		roster = roster[:n]
	}
	return roster
}

// RecentOrders returns the n newest orders by creation date.
func RecentOrders(orders []models.Order, n int) []models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].OrderNumber > sorted[j].OrderNumber
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
