package mapping

import (
	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	"github.com/fxdeals/fx_deals_warehouse/internal/models"
)

// ToModelDeal converts a domain Deal to a model Deal
func ToModelDeal(d domain.Deal) models.Deal {
	return models.Deal{
		ID:            d.ID,
		DealUniqueID:  d.DealUniqueID,
		FromCurrency:  d.FromCurrency,
		ToCurrency:    d.ToCurrency,
		DealTimestamp: d.DealTimestamp,
		DealAmount:    d.DealAmount,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainDeal converts a model Deal to a domain Deal
func ToDomainDeal(m models.Deal) domain.Deal {
	return domain.Deal{
		ID:            m.ID,
		DealUniqueID:  m.DealUniqueID,
		FromCurrency:  m.FromCurrency,
		ToCurrency:    m.ToCurrency,
		DealTimestamp: m.DealTimestamp,
		DealAmount:    m.DealAmount,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainDealSlice converts a slice of model Deals to a slice of domain Deals
func ToDomainDealSlice(ms []models.Deal) []domain.Deal {
	ds := make([]domain.Deal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeal(m)
	}
	return ds
}
