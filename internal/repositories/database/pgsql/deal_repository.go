package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/apperrors"
	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/repositories"
	"github.com/fxdeals/fx_deals_warehouse/internal/models"
	"github.com/fxdeals/fx_deals_warehouse/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDealRepository is the durable deal store. The unique index on
// deal_unique_id is the authoritative uniqueness guarantee for the
// admission pipeline.
type PgxDealRepository struct {
	BaseRepository
}

// newPgxDealRepository creates a new repository for deal data.
func newPgxDealRepository(pool *pgxpool.Pool) portsrepo.DealRepositoryWithTx {
	return &PgxDealRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DealRepositoryWithTx = (*PgxDealRepository)(nil)

const dealColumns = "id, deal_unique_id, from_currency, to_currency, deal_timestamp, deal_amount, created_at"

// InsertDealIfAbsent persists the deal, letting the unique constraint on
// deal_unique_id arbitrate races: of two concurrent inserts for the same
// business key exactly one row is committed, the loser gets ErrDuplicate.
// The store assigns the surrogate ID and createdAt.
func (r *PgxDealRepository) InsertDealIfAbsent(ctx context.Context, deal domain.Deal) (*domain.Deal, error) {
	modelDeal := mapping.ToModelDeal(deal)

	query := `
		INSERT INTO deals (deal_unique_id, from_currency, to_currency, deal_timestamp, deal_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelDeal.DealUniqueID,
		modelDeal.FromCurrency,
		modelDeal.ToCurrency,
		modelDeal.DealTimestamp,
		modelDeal.DealAmount,
	).Scan(&modelDeal.ID, &modelDeal.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, fmt.Errorf("%w: deal with unique ID %s already exists", apperrors.ErrDuplicate, modelDeal.DealUniqueID)
			}
		}
		return nil, fmt.Errorf("failed to insert deal %s: %w", modelDeal.DealUniqueID, err)
	}

	domainDeal := mapping.ToDomainDeal(modelDeal)
	return &domainDeal, nil
}

// ExistsByUniqueID reports whether a deal with the given business key exists.
func (r *PgxDealRepository) ExistsByUniqueID(ctx context.Context, dealUniqueID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM deals WHERE deal_unique_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, dealUniqueID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of deal %s: %w", dealUniqueID, err)
	}
	return exists, nil
}

// FindDealByUniqueID retrieves a deal by its business key.
func (r *PgxDealRepository) FindDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error) {
	query := fmt.Sprintf(`SELECT %s FROM deals WHERE deal_unique_id = $1;`, dealColumns)

	var modelDeal models.Deal
	err := r.Pool.QueryRow(ctx, query, dealUniqueID).Scan(
		&modelDeal.ID,
		&modelDeal.DealUniqueID,
		&modelDeal.FromCurrency,
		&modelDeal.ToCurrency,
		&modelDeal.DealTimestamp,
		&modelDeal.DealAmount,
		&modelDeal.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deal by unique ID %s: %w", dealUniqueID, err)
	}

	domainDeal := mapping.ToDomainDeal(modelDeal)
	return &domainDeal, nil
}

// ListDeals retrieves all persisted deals, oldest insertion first.
func (r *PgxDealRepository) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	query := fmt.Sprintf(`SELECT %s FROM deals ORDER BY id;`, dealColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	return collectDeals(rows)
}

// FindDealsByCurrencyPair retrieves deals for an exact (from, to) pair,
// newest deal timestamp first.
func (r *PgxDealRepository) FindDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.Deal, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM deals
		WHERE from_currency = $1 AND to_currency = $2
		ORDER BY deal_timestamp DESC;
	`, dealColumns)

	rows, err := r.Pool.Query(ctx, query, fromCurrency, toCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals for pair %s/%s: %w", fromCurrency, toCurrency, err)
	}
	defer rows.Close()

	return collectDeals(rows)
}

// FindDealsByTimestampRange retrieves deals with deal_timestamp in
// [start, end]; BETWEEN keeps both bounds inclusive.
func (r *PgxDealRepository) FindDealsByTimestampRange(ctx context.Context, start, end time.Time) ([]domain.Deal, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM deals
		WHERE deal_timestamp BETWEEN $1 AND $2
		ORDER BY deal_timestamp DESC;
	`, dealColumns)

	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals in time range: %w", err)
	}
	defer rows.Close()

	return collectDeals(rows)
}

// FindRecentDeals retrieves up to limit deals, newest createdAt first.
// The surrogate ID breaks ties between rows created in the same instant.
func (r *PgxDealRepository) FindRecentDeals(ctx context.Context, limit int) ([]domain.Deal, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM deals
		ORDER BY created_at DESC, id DESC
		LIMIT $1;
	`, dealColumns)

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent deals: %w", err)
	}
	defer rows.Close()

	return collectDeals(rows)
}

// CountDeals returns the total number of persisted deals.
func (r *PgxDealRepository) CountDeals(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM deals;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count deals: %w", err)
	}
	return count, nil
}

func collectDeals(rows pgx.Rows) ([]domain.Deal, error) {
	modelDeals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Deal, error) {
		var deal models.Deal
		err := row.Scan(
			&deal.ID,
			&deal.DealUniqueID,
			&deal.FromCurrency,
			&deal.ToCurrency,
			&deal.DealTimestamp,
			&deal.DealAmount,
			&deal.CreatedAt,
		)
		return deal, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan deals: %w", err)
	}

	return mapping.ToDomainDealSlice(modelDeals), nil
}
