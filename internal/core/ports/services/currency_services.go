package services

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
)

// LoadCurrencyRatesSvc loads the merged currency list shown on the list screen.
type LoadCurrencyRatesSvc interface {
	// LoadCurrencyRates fetches tables A and B concurrently and returns their merged entries.
	LoadCurrencyRates(ctx context.Context) ([]domain.Currency, error)
}

// LoadCurrencyDetailsSvc loads a currency's details with highlighted historical rates.
type LoadCurrencyDetailsSvc interface {
	// LoadCurrencyDetails fetches the last `days` rates of `code` from `table`.
	// An empty table means the default table, a non-positive days value the configured default.
	LoadCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error)
}
