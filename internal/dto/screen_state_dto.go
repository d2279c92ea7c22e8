package dto

import "github.com/SscSPs/nbp_rates_app/internal/viewstate"

// CurrencyListStateResponse is the JSON form of the currency list screen state.
type CurrencyListStateResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
	IsLoading  bool               `json:"isLoading"`
	Error      *string            `json:"error"`
}

// CurrencyDetailsStateResponse is the JSON form of a currency details screen state.
type CurrencyDetailsStateResponse struct {
	CurrencyDetails *CurrencyDetailsResponse `json:"currencyDetails"`
	IsLoading       bool                     `json:"isLoading"`
	Error           *string                  `json:"error"`
}

// CurrencyCodeURI binds the currency code path parameter (ISO 4217, three letters).
type CurrencyCodeURI struct {
	Code string `uri:"code" binding:"required,len=3,alpha"`
}

// CurrencyDetailsQuery holds the optional query parameters of the details endpoint.
type CurrencyDetailsQuery struct {
	Table string `form:"table" binding:"omitempty,nbptable"`
	Days  int    `form:"days" binding:"omitempty,gt=0"`
}

// ErrorResponse is a generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToCurrencyListStateResponse converts the list screen snapshot.
func ToCurrencyListStateResponse(s viewstate.CurrencyListState) CurrencyListStateResponse {
	return CurrencyListStateResponse{
		Currencies: ToListCurrencyResponse(s.Currencies),
		IsLoading:  s.IsLoading,
		Error:      s.Error,
	}
}

// ToCurrencyDetailsStateResponse converts a details screen snapshot.
func ToCurrencyDetailsStateResponse(s viewstate.CurrencyDetailsState) CurrencyDetailsStateResponse {
	return CurrencyDetailsStateResponse{
		CurrencyDetails: ToCurrencyDetailsResponse(s.Details),
		IsLoading:       s.IsLoading,
		Error:           s.Error,
	}
}
