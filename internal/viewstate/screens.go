package viewstate

import (
	"context"

	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
)

// Screens bundles the state containers of both screens.
type Screens struct {
	CurrencyList    *CurrencyListViewModel
	CurrencyDetails *CurrencyDetailsScreens
}

// NewScreens wires the screen state containers to the use cases.
func NewScreens(services *portssvc.ServiceContainer) *Screens {
	return &Screens{
		CurrencyList:    NewCurrencyListViewModel(services.CurrencyRates),
		CurrencyDetails: NewCurrencyDetailsScreens(services.CurrencyDetails),
	}
}

// Start triggers the initial list load, as opening the app does.
func (s *Screens) Start(ctx context.Context) {
	s.CurrencyList.Start(ctx)
}
