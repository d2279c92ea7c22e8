package nbp

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/SscSPs/nbp_rates_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/nbp_rates_app/internal/utils/mapping"
)

// CurrencyDetailsRepository implements portsrepo.CurrencyDetailsRepository on top of the NBP API.
type CurrencyDetailsRepository struct {
	api clients.NBPClient
}

// NewCurrencyDetailsRepository creates a new CurrencyDetailsRepository.
func NewCurrencyDetailsRepository(api clients.NBPClient) *CurrencyDetailsRepository {
	return &CurrencyDetailsRepository{api: api}
}

var _ portsrepo.CurrencyDetailsRepository = (*CurrencyDetailsRepository)(nil)

func (r *CurrencyDetailsRepository) GetCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error) {
	rates, err := r.api.GetCurrencyRatesLastDays(ctx, code, table.String(), days)
	if err != nil {
		return nil, err
	}

	details, err := mapping.ToDomainCurrencyDetails(*rates)
	if err != nil {
		return nil, err
	}
	return &details, nil
}
