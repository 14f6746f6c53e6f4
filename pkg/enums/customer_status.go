package enums

import "fmt"

// CustomerStatus classifies a derived customer record. It is computed from the
// current order set on every aggregation run and never persisted.
type CustomerStatus string

const (
	CustomerStatusVIP      CustomerStatus = "vip"
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

var validCustomerStatuses = []CustomerStatus{
	CustomerStatusVIP,
	CustomerStatusActive,
	CustomerStatusInactive,
}

// String implements fmt.Stringer.
func (s CustomerStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CustomerStatus.
func (s CustomerStatus) IsValid() bool {
	for _, candidate := range validCustomerStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCustomerStatus converts raw input into a CustomerStatus.
func ParseCustomerStatus(value string) (CustomerStatus, error) {
	for _, candidate := range validCustomerStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customer status %q", value)
}
