package mapping

import (
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/SscSPs/nbp_rates_app/internal/dto"
)

// ToDomainHistoricalRate converts one point of a rate series. The highlight flag is left unset.
func ToDomainHistoricalRate(r dto.RateDTO) domain.HistoricalRate {
	return domain.HistoricalRate{
		EffectiveDate: r.EffectiveDate,
		Rate:          valueOrZero(r.Mid),
	}
}

// ToDomainCurrencyDetails converts a rate series into CurrencyDetails. The first point of
// the series provides the current rate and effective date; an empty series yields 0 and "".
func ToDomainCurrencyDetails(d dto.CurrencyRateDTO) (domain.CurrencyDetails, error) {
	table, err := domain.ParseTable(d.Table)
	if err != nil {
		return domain.CurrencyDetails{}, err
	}

	history := make([]domain.HistoricalRate, len(d.Rates))
	for i, r := range d.Rates {
		history[i] = ToDomainHistoricalRate(r)
	}

	details := domain.CurrencyDetails{
		Name:            d.Currency,
		Code:            d.Code,
		Table:           table,
		HistoricalRates: history,
	}
	if len(history) > 0 {
		details.CurrentRate = history[0].Rate
		details.EffectiveDate = history[0].EffectiveDate
	}
	return details, nil
}
