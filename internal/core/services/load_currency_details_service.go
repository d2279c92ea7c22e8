package services

import (
	"context"
	"log/slog"
	"math"

	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
)

// HighlightThreshold is the relative deviation from the current rate above which a
// historical rate is highlighted.
const HighlightThreshold = 0.10

// DefaultDetailsDays is the number of days loaded when the caller does not ask for a count.
const DefaultDetailsDays = 30

// ShouldHighlight reports whether a historical rate deviates from the current rate by more
// than HighlightThreshold. A zero current rate never highlights.
func ShouldHighlight(historicalRate, currentRate float64) bool {
	if currentRate == 0 {
		return false
	}
	return math.Abs(historicalRate-currentRate)/currentRate > HighlightThreshold
}

type loadCurrencyDetailsService struct {
	BaseService
	repo        portsrepo.CurrencyDetailsRepository
	defaultDays int
}

// DetailsServiceOption is a functional option for configuring the details service
type DetailsServiceOption func(*loadCurrencyDetailsService)

// WithDefaultDays overrides DefaultDetailsDays.
func WithDefaultDays(days int) DetailsServiceOption {
	return func(s *loadCurrencyDetailsService) {
		if days > 0 {
			s.defaultDays = days
		}
	}
}

// NewLoadCurrencyDetailsService creates the details use case.
func NewLoadCurrencyDetailsService(repo portsrepo.CurrencyDetailsRepository, options ...DetailsServiceOption) portssvc.LoadCurrencyDetailsSvc {
	svc := &loadCurrencyDetailsService{
		repo:        repo,
		defaultDays: DefaultDetailsDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LoadCurrencyDetailsSvc = (*loadCurrencyDetailsService)(nil)

func (s *loadCurrencyDetailsService) LoadCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error) {
	if table == "" {
		table = domain.DefaultTable
	}
	if days <= 0 {
		days = s.defaultDays
	}

	details, err := s.repo.GetCurrencyDetails(ctx, code, table, days)
	if err != nil {
		s.LogError(ctx, err, "Failed to load currency details",
			slog.String("code", code),
			slog.String("table", table.String()),
			slog.Int("days", days))
		return nil, err
	}

	highlighted := make([]domain.HistoricalRate, len(details.HistoricalRates))
	for i, r := range details.HistoricalRates {
		highlighted[i] = r.WithHighlight(ShouldHighlight(r.Rate, details.CurrentRate))
	}

	result := *details
	result.HistoricalRates = highlighted

	s.LogInfo(ctx, "Currency details loaded",
		slog.String("code", result.Code),
		slog.String("table", result.Table.String()),
		slog.Int("points", len(highlighted)))
	return &result, nil
}
