package services

// ServiceContainer aggregates the service facades handed to the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Admin       AdminSvcFacade
}
