package nbp

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/apperrors"
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/SscSPs/nbp_rates_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/nbp_rates_app/internal/utils/mapping"
)

// CurrencyListRepository implements portsrepo.CurrencyListRepository on top of the NBP API.
type CurrencyListRepository struct {
	api clients.NBPClient
}

// NewCurrencyListRepository creates a new CurrencyListRepository.
func NewCurrencyListRepository(api clients.NBPClient) *CurrencyListRepository {
	return &CurrencyListRepository{api: api}
}

var _ portsrepo.CurrencyListRepository = (*CurrencyListRepository)(nil)

// GetCurrentRates fetches the latest snapshot of a table. Only the first returned table is used.
func (r *CurrencyListRepository) GetCurrentRates(ctx context.Context, table domain.Table) (*domain.CurrencyTable, error) {
	tables, err := r.api.GetCurrentTables(ctx, table.String())
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, apperrors.ErrNoTableData
	}

	currencyTable, err := mapping.ToDomainCurrencyTable(tables[0])
	if err != nil {
		return nil, err
	}
	return &currencyTable, nil
}
