package services

// ServiceContainer aggregates the service facades handed to route
// registration, so handlers depend on interfaces rather than concrete types.
type ServiceContainer struct {
	User  UserSvcFacade
	Token TokenSvcFacade
}
