package services

import (
	"context"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
)

// DealReaderSvc defines the read-only query surface over persisted deals
type DealReaderSvc interface {
	// GetDealByUniqueID retrieves a deal by its business key.
	// Returns apperrors.ErrNotFound on a miss.
	GetDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error)

	// ListDeals retrieves all persisted deals.
	ListDeals(ctx context.Context) ([]domain.Deal, error)

	// GetDealsByCurrencyPair retrieves deals for a currency pair; inputs are
	// upper-cased before querying. Results ordered by deal timestamp descending.
	GetDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.Deal, error)

	// GetDealsByTimeRange retrieves deals with timestamps in [start, end] inclusive,
	// ordered by deal timestamp descending.
	GetDealsByTimeRange(ctx context.Context, start, end time.Time) ([]domain.Deal, error)

	// GetRecentDeals retrieves up to limit deals, newest createdAt first.
	GetRecentDeals(ctx context.Context, limit int) ([]domain.Deal, error)

	// CountDeals returns the total number of persisted deals.
	CountDeals(ctx context.Context) (int64, error)

	// DealExists reports whether a deal with the given business key exists.
	DealExists(ctx context.Context, dealUniqueID string) (bool, error)
}

// DealWriterSvc defines the admission pipeline entry point
type DealWriterSvc interface {
	// SubmitDeal validates the request, checks for duplicates and commits a
	// canonical Deal. Returns apperrors.ErrValidation or apperrors.ErrDuplicate
	// wrapped errors on rejection.
	SubmitDeal(ctx context.Context, req dto.SubmitDealRequest) (*domain.Deal, error)
}

// DealSvcFacade combines all deal-related service interfaces
type DealSvcFacade interface {
	DealReaderSvc
	DealWriterSvc
}
