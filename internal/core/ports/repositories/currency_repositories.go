package repositories

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
)

// CurrencyListRepository provides the current publication of a rate table.
type CurrencyListRepository interface {
	// GetCurrentRates retrieves the latest snapshot of the given table.
	GetCurrentRates(ctx context.Context, table domain.Table) (*domain.CurrencyTable, error)
}

// CurrencyDetailsRepository provides the recent rate series of a single currency.
type CurrencyDetailsRepository interface {
	// GetCurrencyDetails retrieves the last `days` rates of a currency, unhighlighted.
	GetCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error)
}
