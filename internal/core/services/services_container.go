package services

import (
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
	"github.com/SscSPs/nbp_rates_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		CurrencyRates: NewLoadCurrencyRatesService(repos.CurrencyListRepo),
		CurrencyDetails: NewLoadCurrencyDetailsService(
			repos.CurrencyDetailsRepo,
			WithDefaultDays(cfg.DetailsDefaultDays),
		),
	}
}
