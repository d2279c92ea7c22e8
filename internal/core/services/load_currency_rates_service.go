package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// loadCurrencyRatesService merges the current publications of tables A and B.
// Table C is never loaded here.
type loadCurrencyRatesService struct {
	BaseService
	repo portsrepo.CurrencyListRepository
}

// NewLoadCurrencyRatesService creates the list use case.
func NewLoadCurrencyRatesService(repo portsrepo.CurrencyListRepository) portssvc.LoadCurrencyRatesSvc {
	return &loadCurrencyRatesService{repo: repo}
}

var _ portssvc.LoadCurrencyRatesSvc = (*loadCurrencyRatesService)(nil)

// LoadCurrencyRates fetches both tables concurrently. The group has no shared context, so a
// failure of one fetch does not cancel the other; the first error is returned once both finish.
func (s *loadCurrencyRatesService) LoadCurrencyRates(ctx context.Context) ([]domain.Currency, error) {
	var tableA, tableB *domain.CurrencyTable

	var g errgroup.Group
	g.Go(func() error {
		var err error
		tableA, err = s.repo.GetCurrentRates(ctx, domain.TableA)
		return err
	})
	g.Go(func() error {
		var err error
		tableB, err = s.repo.GetCurrentRates(ctx, domain.TableB)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load currency tables")
		return nil, err
	}

	type datedCurrency struct {
		currency      domain.Currency
		effectiveDate string
	}
	dated := make([]datedCurrency, 0, len(tableA.Rates)+len(tableB.Rates))
	for _, c := range tableA.Rates {
		dated = append(dated, datedCurrency{c, tableA.EffectiveDate})
	}
	for _, c := range tableB.Rates {
		dated = append(dated, datedCurrency{c, tableB.EffectiveDate})
	}

	// Newest publication first. ISO dates compare correctly as strings.
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].effectiveDate > dated[j].effectiveDate
	})

	currencies := make([]domain.Currency, len(dated))
	for i, d := range dated {
		currencies[i] = d.currency
	}

	s.LogDebug(ctx, "Currency tables merged",
		slog.Int("table_a", len(tableA.Rates)),
		slog.Int("table_b", len(tableB.Rates)),
	)
	return currencies, nil
}
