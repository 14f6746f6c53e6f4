package types

import (
	"fmt"
	"strings"
)

// Address is a postal address snapshot embedded on an order. Each order holds
// two independent instances (shipping and billing) with no shared identity.
type Address struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	PostalCode   string  `json:"postalCode"`
	Country      string  `json:"country"`
	Phone        *string `json:"phone,omitempty"`
}

// Validate reports whether the required fields are present.
func (a Address) Validate() error {
	if strings.TrimSpace(a.AddressLine1) == "" {
		return fmt.Errorf("address: missing addressLine1")
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("address: missing city")
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		return fmt.Errorf("address: missing postalCode")
	}
	if strings.TrimSpace(a.Country) == "" {
		return fmt.Errorf("address: missing country")
	}
	return nil
}
