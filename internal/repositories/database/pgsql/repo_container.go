package pgsql

import (
	portsrepo "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	dealRepo := newPgxDealRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		DealRepo:     dealRepo,
		CurrencyRepo: currencyRepo,
	}
}
