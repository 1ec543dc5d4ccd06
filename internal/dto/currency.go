package dto

import (
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to extend the currency catalog.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Name         string `json:"name" binding:"required"`
	MinorUnits   int    `json:"minorUnits" binding:"min=0,max=4"`
}

// CurrencyResponse defines the data returned for a catalog currency.
type CurrencyResponse struct {
	CurrencyCode string    `json:"currencyCode"`
	Name         string    `json:"name"`
	MinorUnits   int       `json:"minorUnits"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Name:         curr.Name,
		MinorUnits:   curr.MinorUnits,
		CreatedAt:    curr.CreatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
