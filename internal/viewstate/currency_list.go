package viewstate

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
)

// CurrencyListState is the snapshot rendered by the currency list screen.
type CurrencyListState struct {
	Currencies []domain.Currency
	IsLoading  bool
	Error      *string
}

// CurrencyListViewModel drives the list screen through the List use case.
// Concurrent loads are not coalesced; the last one to finish wins.
type CurrencyListViewModel struct {
	store *Store[CurrencyListState]
	svc   portssvc.LoadCurrencyRatesSvc
}

// NewCurrencyListViewModel creates a view model in the loading state. Call Start to trigger the first load.
func NewCurrencyListViewModel(svc portssvc.LoadCurrencyRatesSvc) *CurrencyListViewModel {
	return &CurrencyListViewModel{
		store: NewStore(CurrencyListState{Currencies: []domain.Currency{}, IsLoading: true}),
		svc:   svc,
	}
}

// Start triggers the initial load in the background.
func (vm *CurrencyListViewModel) Start(ctx context.Context) {
	go func() {
		_, _ = vm.Load(ctx)
	}()
}

// Load fetches the currencies and returns the resulting state along with the load error.
// On failure the previous currencies are kept and the error message is stored.
func (vm *CurrencyListViewModel) Load(ctx context.Context) (CurrencyListState, error) {
	vm.store.Update(func(s CurrencyListState) CurrencyListState {
		s.IsLoading = true
		s.Error = nil
		return s
	})

	currencies, err := vm.svc.LoadCurrencyRates(ctx)
	if err != nil {
		msg := errorMessage(err)
		return vm.store.Update(func(s CurrencyListState) CurrencyListState {
			s.IsLoading = false
			s.Error = &msg
			return s
		}), err
	}

	return vm.store.Update(func(s CurrencyListState) CurrencyListState {
		s.Currencies = currencies
		s.IsLoading = false
		s.Error = nil
		return s
	}), nil
}

// ClearError drops the error message and leaves everything else as is.
func (vm *CurrencyListViewModel) ClearError() CurrencyListState {
	return vm.store.Update(func(s CurrencyListState) CurrencyListState {
		s.Error = nil
		return s
	})
}

// State returns the current snapshot.
func (vm *CurrencyListViewModel) State() CurrencyListState {
	return vm.store.Get()
}

// Subscribe streams snapshots, starting with the current one.
func (vm *CurrencyListViewModel) Subscribe() (<-chan CurrencyListState, func()) {
	return vm.store.Subscribe()
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}
