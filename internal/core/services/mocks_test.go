package services_test

import (
	"context"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyListRepository ---
type MockCurrencyListRepository struct {
	mock.Mock
}

func (m *MockCurrencyListRepository) GetCurrentRates(ctx context.Context, table domain.Table) (*domain.CurrencyTable, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyTable), args.Error(1)
}

var _ portsrepo.CurrencyListRepository = (*MockCurrencyListRepository)(nil)

// --- Mock CurrencyDetailsRepository ---
type MockCurrencyDetailsRepository struct {
	mock.Mock
}

func (m *MockCurrencyDetailsRepository) GetCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error) {
	args := m.Called(ctx, code, table, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDetails), args.Error(1)
}

var _ portsrepo.CurrencyDetailsRepository = (*MockCurrencyDetailsRepository)(nil)
