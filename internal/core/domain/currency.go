package domain

import "time"

// Currency is a row of the ISO 4217 catalog the admission pipeline
// validates deal currencies against.
type Currency struct {
	CurrencyCode string    `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string    `json:"name"`         // e.g., "US Dollar"
	MinorUnits   int       `json:"minorUnits"`   // ISO 4217 exponent (e.g., 2)
	CreatedAt    time.Time `json:"createdAt"`
}
