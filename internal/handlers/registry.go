package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler              *AuthHandler
	UserHandler              *UserHandler
	PersonalDetailsHandler   *PersonalDetailsHandler
	ClientDataHandler        *ClientDataHandler
	DocumentHandler          *DocumentHandler
	FormHandler              *FormHandler
	FormConfigurationHandler *FormConfigurationHandler
}
