package domain

// CurrencyDetails combines the current rate of a currency with its recent history.
type CurrencyDetails struct {
	Name            string           `json:"name"`
	Code            string           `json:"code"`
	CurrentRate     float64          `json:"currentRate"`
	Table           Table            `json:"table"`
	EffectiveDate   string           `json:"effectiveDate"`
	HistoricalRates []HistoricalRate `json:"historicalRates"`
}

// HistoricalRate is one point of a currency's rate series.
type HistoricalRate struct {
	EffectiveDate string  `json:"effectiveDate"`
	Rate          float64 `json:"rate"`
	IsHighlighted bool    `json:"isHighlighted"`
}

// WithHighlight returns a copy of the rate with the highlight flag set.
func (r HistoricalRate) WithHighlight(highlighted bool) HistoricalRate {
	r.IsHighlighted = highlighted
	return r
}
