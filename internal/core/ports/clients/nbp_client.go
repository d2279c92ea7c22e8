package clients

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/dto"
)

// NBPClient performs single requests against the NBP exchange-rate API.
// Every failure (transport, non-2xx, decode) is reported as an error wrapping apperrors.ErrUpstream.
type NBPClient interface {
	// GetCurrentTables fetches the latest publication of the given table.
	GetCurrentTables(ctx context.Context, table string) ([]dto.TableDTO, error)

	// GetCurrencyRatesLastDays fetches the last `days` published rates of a currency.
	GetCurrencyRatesLastDays(ctx context.Context, code, table string, days int) (*dto.CurrencyRateDTO, error)
}
