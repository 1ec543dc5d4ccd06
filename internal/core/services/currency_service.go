package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/apperrors"
	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/services"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
)

// CurrencyService exposes the ISO 4217 catalog. It backs the
// CurrencyValidator capability the admission pipeline is built on.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// IsValidCurrencyCode reports whether the code is present in the catalog.
// A repository miss is a clean false, not an error.
func (s *CurrencyService) IsValidCurrencyCode(ctx context.Context, currencyCode string) (bool, error) {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up currency code %s: %w", currencyCode, err)
	}
	return true, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get currency by code %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all catalog currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// CreateCurrency adds a currency to the catalog. Format validation (3 letters,
// upper case) is handled by DTO binding.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Name:         req.Name,
		MinorUnits:   req.MinorUnits,
		CreatedAt:    time.Now(),
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency %s: %w", req.CurrencyCode, err)
	}

	return &currency, nil
}
