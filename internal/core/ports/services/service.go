package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the console session.
type ServiceContainer struct {
	Account AccountSvcFacade
}
