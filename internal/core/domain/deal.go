package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Deal represents an immutable, uniquely identified FX transaction record.
// ID and CreatedAt are assigned by the store at insert time; the business
// key is DealUniqueID.
type Deal struct {
	ID            int64           `json:"id"`
	DealUniqueID  string          `json:"dealUniqueId"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	DealTimestamp time.Time       `json:"dealTimestamp"`
	DealAmount    decimal.Decimal `json:"dealAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewDeal builds a canonical Deal from already-validated inputs.
// Currency normalization (upper-casing) happens here, once; there are no
// setters afterwards.
func NewDeal(dealUniqueID, fromCurrency, toCurrency string, dealTimestamp time.Time, dealAmount decimal.Decimal) Deal {
	return Deal{
		DealUniqueID:  dealUniqueID,
		FromCurrency:  strings.ToUpper(fromCurrency),
		ToCurrency:    strings.ToUpper(toCurrency),
		DealTimestamp: dealTimestamp,
		DealAmount:    dealAmount,
	}
}
