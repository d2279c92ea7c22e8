package dto

// TableDTO is one element of the NBP `exchangerates/tables/{table}` response.
// Example: {"table":"A","no":"001/A/NBP/2024","effectiveDate":"2024-01-02","rates":[...]}
type TableDTO struct {
	Table         string        `json:"table"`
	No            string        `json:"no"`
	EffectiveDate string        `json:"effectiveDate"`
	Rates         []CurrencyDTO `json:"rates"`
}

// CurrencyDTO is a single rate entry of a table. Mid is absent for table C.
type CurrencyDTO struct {
	Currency string   `json:"currency"`
	Code     string   `json:"code"`
	Mid      *float64 `json:"mid,omitempty"`
}

// CurrencyRateDTO is the NBP `exchangerates/rates/{table}/{code}/last/{days}` response.
type CurrencyRateDTO struct {
	Table    string    `json:"table"`
	Currency string    `json:"currency"`
	Code     string    `json:"code"`
	Rates    []RateDTO `json:"rates"`
}

// RateDTO is one point of a currency rate series. Table C publishes Bid/Ask instead of Mid.
type RateDTO struct {
	No            string   `json:"no"`
	EffectiveDate string   `json:"effectiveDate"`
	Mid           *float64 `json:"mid,omitempty"`
	Bid           *float64 `json:"bid,omitempty"`
	Ask           *float64 `json:"ask,omitempty"`
}
