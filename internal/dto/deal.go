package dto

import (
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitDealRequest defines the payload for submitting a new FX deal.
// Binding tags give an early reject at the transport edge; the admission
// service re-validates everything, so the rules hold for any caller.
type SubmitDealRequest struct {
	DealUniqueID  string          `json:"dealUniqueId" binding:"required,min=1,max=100"`
	FromCurrency  string          `json:"fromCurrency" binding:"required"`
	ToCurrency    string          `json:"toCurrency" binding:"required"`
	DealTimestamp time.Time       `json:"dealTimestamp" binding:"required"`
	DealAmount    decimal.Decimal `json:"dealAmount" binding:"required"`
}

// DealResponse defines the data returned for a persisted deal.
type DealResponse struct {
	ID            int64           `json:"id"`
	DealUniqueID  string          `json:"dealUniqueId"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	DealTimestamp time.Time       `json:"dealTimestamp"`
	DealAmount    decimal.Decimal `json:"dealAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToDealResponse converts a domain.Deal to a DealResponse DTO
func ToDealResponse(deal *domain.Deal) DealResponse {
	return DealResponse{
		ID:            deal.ID,
		DealUniqueID:  deal.DealUniqueID,
		FromCurrency:  deal.FromCurrency,
		ToCurrency:    deal.ToCurrency,
		DealTimestamp: deal.DealTimestamp,
		DealAmount:    deal.DealAmount,
		CreatedAt:     deal.CreatedAt,
	}
}

// ToListDealResponse converts a slice of domain.Deal to a slice of DealResponse DTOs
func ToListDealResponse(deals []domain.Deal) []DealResponse {
	res := make([]DealResponse, len(deals))
	for i := range deals {
		res[i] = ToDealResponse(&deals[i])
	}
	return res
}

// DealCountResponse is the payload of the deal count stats endpoint.
type DealCountResponse struct {
	TotalDeals int64 `json:"totalDeals"`
}

// DealExistsResponse is the payload of the deal existence endpoint.
type DealExistsResponse struct {
	Exists bool `json:"exists"`
}
