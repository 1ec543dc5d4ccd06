package repositories

import (
	"context"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
)

// DealReader defines read operations over persisted deals
type DealReader interface {
	// ExistsByUniqueID reports whether a deal with the given business key exists.
	ExistsByUniqueID(ctx context.Context, dealUniqueID string) (bool, error)

	// FindDealByUniqueID retrieves a deal by its business key.
	// Returns apperrors.ErrNotFound when no such deal exists.
	FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error)

	// ListDeals retrieves all persisted deals.
	ListDeals(ctx context.Context) ([]domain.Deal, error)

	// FindDealsByCurrencyPair retrieves deals for an exact (from, to) pair,
	// ordered by deal timestamp descending.
	FindDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.Deal, error)

	// FindDealsByTimestampRange retrieves deals whose timestamp falls in
	// [start, end], both bounds inclusive, ordered by deal timestamp descending.
	FindDealsByTimestampRange(ctx context.Context, start, end time.Time) ([]domain.Deal, error)

	// FindRecentDeals retrieves up to limit deals ordered by creation time descending.
	FindRecentDeals(ctx context.Context, limit int) ([]domain.Deal, error)

	// CountDeals returns the total number of persisted deals.
	CountDeals(ctx context.Context) (int64, error)
}

// DealWriter defines write operations for deals
type DealWriter interface {
	// InsertDealIfAbsent atomically persists the deal unless its business key
	// is already taken, in which case it returns apperrors.ErrDuplicate.
	// This is the authoritative uniqueness guarantee: of two racing inserts
	// for the same dealUniqueId exactly one succeeds. The returned Deal
	// carries the store-assigned surrogate ID and createdAt.
	InsertDealIfAbsent(ctx context.Context, deal domain.Deal) (*domain.Deal, error)
}

// DealRepositoryFacade combines all deal-related repository interfaces
// This is a facade for clients that need access to all operations
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}

// DealRepositoryWithTx extends DealRepositoryFacade with transaction capabilities
type DealRepositoryWithTx interface {
	DealRepositoryFacade
	TransactionManager
}
