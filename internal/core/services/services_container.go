package services

import (
	portsrepo "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/services"
	"github.com/fxdeals/fx_deals_warehouse/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency catalog first; the deal service validates against it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Deal = NewDealService(repos.DealRepo, container.Currency, cfg.RejectFutureDeals)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.DealSvcFacade     = (*DealService)(nil)
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
)
