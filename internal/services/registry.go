package services

// ServiceContainer bundles every service for injection into the handlers.
type ServiceContainer struct {
	Auth              AuthService
	User              UserService
	PersonalDetails   PersonalDetailsService
	ClientData        ClientDataService
	Document          DocumentService
	Form              FormService
	FormConfiguration FormConfigurationService
	ProfileCompletion ProfileCompletionService
}
