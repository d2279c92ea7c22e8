package viewstate

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock LoadCurrencyRatesSvc ---
type MockLoadCurrencyRatesSvc struct {
	mock.Mock
}

func (m *MockLoadCurrencyRatesSvc) LoadCurrencyRates(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock LoadCurrencyDetailsSvc ---
type MockLoadCurrencyDetailsSvc struct {
	mock.Mock
}

func (m *MockLoadCurrencyDetailsSvc) LoadCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error) {
	args := m.Called(ctx, code, table, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDetails), args.Error(1)
}
