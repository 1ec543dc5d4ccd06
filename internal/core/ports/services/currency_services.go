package services

import (
	"context"

	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
)

// CurrencyValidator is the injected ISO 4217 lookup capability the admission
// pipeline depends on. Kept minimal so the catalog backing it can be swapped
// or faked independently.
type CurrencyValidator interface {
	// IsValidCurrencyCode reports whether the upper-cased code is a known
	// ISO 4217 currency.
	IsValidCurrencyCode(ctx context.Context, currencyCode string) (bool, error)
}

// CurrencyReaderSvc defines read operations for catalog data
type CurrencyReaderSvc interface {
	CurrencyValidator

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all catalog currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for catalog data
type CurrencyWriterSvc interface {
	// CreateCurrency adds a currency to the catalog.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
