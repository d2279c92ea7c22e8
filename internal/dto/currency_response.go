package dto

import (
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/SscSPs/nbp_rates_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ratePrecision matches the four decimal places NBP publishes mid rates with.
const ratePrecision = 4

// CurrencyResponse defines the API representation of a currency list entry.
type CurrencyResponse struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	CurrentRate   float64 `json:"currentRate"`
	FormattedRate string  `json:"formattedRate"`
	Table         string  `json:"table"`
}

// HistoricalRateResponse defines the API representation of one historical rate point.
type HistoricalRateResponse struct {
	EffectiveDate string  `json:"effectiveDate"`
	Rate          float64 `json:"rate"`
	FormattedRate string  `json:"formattedRate"`
	IsHighlighted bool    `json:"isHighlighted"`
}

// CurrencyDetailsResponse defines the API representation of a currency's details.
type CurrencyDetailsResponse struct {
	Name            string                   `json:"name"`
	Code            string                   `json:"code"`
	CurrentRate     float64                  `json:"currentRate"`
	FormattedRate   string                   `json:"formattedRate"`
	Table           string                   `json:"table"`
	EffectiveDate   string                   `json:"effectiveDate"`
	HistoricalRates []HistoricalRateResponse `json:"historicalRates"`
}

func formatRate(rate float64) string {
	return utils.FormatWithPrecision(decimal.NewFromFloat(rate), ratePrecision)
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Name:          c.Name,
		Code:          c.Code,
		CurrentRate:   c.CurrentRate,
		FormattedRate: formatRate(c.CurrentRate),
		Table:         c.Table.String(),
	}
}

// ToListCurrencyResponse converts a slice of domain currencies, never returning nil.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = ToCurrencyResponse(c)
	}
	return responses
}

// ToCurrencyDetailsResponse converts domain.CurrencyDetails to its DTO.
func ToCurrencyDetailsResponse(d *domain.CurrencyDetails) *CurrencyDetailsResponse {
	if d == nil {
		return nil
	}
	history := make([]HistoricalRateResponse, len(d.HistoricalRates))
	for i, r := range d.HistoricalRates {
		history[i] = HistoricalRateResponse{
			EffectiveDate: r.EffectiveDate,
			Rate:          r.Rate,
			FormattedRate: formatRate(r.Rate),
			IsHighlighted: r.IsHighlighted,
		}
	}
	return &CurrencyDetailsResponse{
		Name:            d.Name,
		Code:            d.Code,
		CurrentRate:     d.CurrentRate,
		FormattedRate:   formatRate(d.CurrentRate),
		Table:           d.Table.String(),
		EffectiveDate:   d.EffectiveDate,
		HistoricalRates: history,
	}
}
