package domain

// Currency is a single entry of a published rate table.
type Currency struct {
	Name        string  `json:"name"`        // e.g., "dolar amerykański"
	Code        string  `json:"code"`        // e.g., "USD"
	CurrentRate float64 `json:"currentRate"` // mid rate, 0 when the table has none
	Table       Table   `json:"table"`
}

// CurrencyTable is one as-of publication of a rate table.
type CurrencyTable struct {
	Table         Table      `json:"table"`
	No            string     `json:"no"`            // e.g., "001/A/NBP/2024"
	EffectiveDate string     `json:"effectiveDate"` // ISO date
	Rates         []Currency `json:"rates"`
}
