package mapping

import (
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/SscSPs/nbp_rates_app/internal/dto"
)

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ToDomainCurrency converts a table entry to a domain Currency on the simple list path,
// where the source table is always A.
func ToDomainCurrency(d dto.CurrencyDTO) domain.Currency {
	return toDomainCurrency(d, domain.TableA)
}

func toDomainCurrency(d dto.CurrencyDTO, table domain.Table) domain.Currency {
	return domain.Currency{
		Name:        d.Currency,
		Code:        d.Code,
		CurrentRate: valueOrZero(d.Mid),
		Table:       table,
	}
}

// ToDomainCurrencies converts a list of table entries on the simple list path.
func ToDomainCurrencies(dtos []dto.CurrencyDTO) []domain.Currency {
	currencies := make([]domain.Currency, len(dtos))
	for i, d := range dtos {
		currencies[i] = ToDomainCurrency(d)
	}
	return currencies
}

// ToDomainCurrencyTable converts a table snapshot. Every entry is labelled with the
// snapshot's own table. A table parse failure is returned unwrapped so its message reaches the screen as is.
func ToDomainCurrencyTable(d dto.TableDTO) (domain.CurrencyTable, error) {
	table, err := domain.ParseTable(d.Table)
	if err != nil {
		return domain.CurrencyTable{}, err
	}

	rates := make([]domain.Currency, len(d.Rates))
	for i, r := range d.Rates {
		rates[i] = toDomainCurrency(r, table)
	}

	return domain.CurrencyTable{
		Table:         table,
		No:            d.No,
		EffectiveDate: d.EffectiveDate,
		Rates:         rates,
	}, nil
}
