package models

import "time"

// Currency is the database representation of an ISO 4217 catalog entry.
type Currency struct {
	CurrencyCode string    `db:"currency_code"` // Primary Key (e.g., "USD")
	Name         string    `db:"name"`          // e.g., "US Dollar"
	MinorUnits   int       `db:"minor_units"`
	CreatedAt    time.Time `db:"created_at"`
}
