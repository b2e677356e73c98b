package ports

// ServiceContainer bundles the service interfaces handed to the HTTP boundary.
type ServiceContainer struct {
	Account      AccountSvc
	Currency     CurrencySvc
	ExchangeRate ExchangeRateSvc
	Transfer     TransferSvc
}
