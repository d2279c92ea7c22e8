package viewstate

import (
	"context"
	"strings"
	"sync"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
)

// CurrencyDetailsState is the snapshot rendered by the currency details screen.
type CurrencyDetailsState struct {
	Details   *domain.CurrencyDetails
	IsLoading bool
	Error     *string
}

// CurrencyDetailsViewModel drives one details screen through the Details use case.
type CurrencyDetailsViewModel struct {
	store *Store[CurrencyDetailsState]
	svc   portssvc.LoadCurrencyDetailsSvc
}

// NewCurrencyDetailsViewModel creates an idle view model.
func NewCurrencyDetailsViewModel(svc portssvc.LoadCurrencyDetailsSvc) *CurrencyDetailsViewModel {
	return &CurrencyDetailsViewModel{
		store: NewStore(CurrencyDetailsState{}),
		svc:   svc,
	}
}

// Load fetches details for code and returns the resulting state along with the load error.
// On failure the previous details are kept and the error message is stored.
func (vm *CurrencyDetailsViewModel) Load(ctx context.Context, code string, table domain.Table, days int) (CurrencyDetailsState, error) {
	vm.store.Update(func(s CurrencyDetailsState) CurrencyDetailsState {
		s.IsLoading = true
		s.Error = nil
		return s
	})

	details, err := vm.svc.LoadCurrencyDetails(ctx, code, table, days)
	if err != nil {
		msg := errorMessage(err)
		return vm.store.Update(func(s CurrencyDetailsState) CurrencyDetailsState {
			s.IsLoading = false
			s.Error = &msg
			return s
		}), err
	}

	return vm.store.Update(func(s CurrencyDetailsState) CurrencyDetailsState {
		s.Details = details
		s.IsLoading = false
		s.Error = nil
		return s
	}), nil
}

// ClearError drops the error message and leaves everything else as is.
func (vm *CurrencyDetailsViewModel) ClearError() CurrencyDetailsState {
	return vm.store.Update(func(s CurrencyDetailsState) CurrencyDetailsState {
		s.Error = nil
		return s
	})
}

// State returns the current snapshot.
func (vm *CurrencyDetailsViewModel) State() CurrencyDetailsState {
	return vm.store.Get()
}

// Subscribe streams snapshots, starting with the current one.
func (vm *CurrencyDetailsViewModel) Subscribe() (<-chan CurrencyDetailsState, func()) {
	return vm.store.Subscribe()
}

// CurrencyDetailsScreens keeps one details view model per currency code. A screen is
// registered only once it has loaded successfully, so unknown codes leave nothing behind.
type CurrencyDetailsScreens struct {
	mu      sync.Mutex
	svc     portssvc.LoadCurrencyDetailsSvc
	screens map[string]*CurrencyDetailsViewModel
}

// NewCurrencyDetailsScreens creates an empty registry.
func NewCurrencyDetailsScreens(svc portssvc.LoadCurrencyDetailsSvc) *CurrencyDetailsScreens {
	return &CurrencyDetailsScreens{
		svc:     svc,
		screens: make(map[string]*CurrencyDetailsViewModel),
	}
}

// Load runs a load on the screen for code. Codes are case-insensitive.
func (r *CurrencyDetailsScreens) Load(ctx context.Context, code string, table domain.Table, days int) (CurrencyDetailsState, error) {
	vm, registered := r.Lookup(code)
	if !registered {
		vm = NewCurrencyDetailsViewModel(r.svc)
	}

	state, err := vm.Load(ctx, code, table, days)
	if err != nil || registered {
		return state, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToUpper(code)
	if existing, ok := r.screens[key]; ok {
		// a concurrent first load won; keep its screen
		return existing.State(), nil
	}
	r.screens[key] = vm
	return state, nil
}

// Lookup returns the screen for code if it was loaded before.
func (r *CurrencyDetailsScreens) Lookup(code string) (*CurrencyDetailsViewModel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vm, ok := r.screens[strings.ToUpper(code)]
	return vm, ok
}

// Len returns the number of registered screens.
func (r *CurrencyDetailsScreens) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.screens)
}
