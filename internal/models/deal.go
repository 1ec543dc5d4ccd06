package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is the database representation of a persisted FX deal.
// deal_unique_id carries a unique constraint; id is a bigserial surrogate.
type Deal struct {
	ID            int64           `db:"id"`
	DealUniqueID  string          `db:"deal_unique_id"`
	FromCurrency  string          `db:"from_currency"`
	ToCurrency    string          `db:"to_currency"`
	DealTimestamp time.Time       `db:"deal_timestamp"`
	DealAmount    decimal.Decimal `db:"deal_amount"`
	CreatedAt     time.Time       `db:"created_at"`
}
