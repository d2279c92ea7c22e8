package services

// ServiceContainer holds instances of all the application services.
// It is built once in the composition root and handed to the screen state containers.
type ServiceContainer struct {
	CurrencyRates   LoadCurrencyRatesSvc
	CurrencyDetails LoadCurrencyDetailsSvc
}
