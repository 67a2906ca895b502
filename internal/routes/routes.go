package routes

import (
	"net/http"

	"wealthcoach_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes.
//
// The auth and admin handlers attach their own middleware; the remaining
// handlers are registered on a shared group that carries authMiddleware.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
	adminMiddleware gin.HandlerFunc,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(authMiddleware)
		{
			appHandlers.PersonalDetailsHandler.RegisterRoutes(protected)
			appHandlers.ClientDataHandler.RegisterRoutes(protected)
			appHandlers.DocumentHandler.RegisterRoutes(protected)
			appHandlers.FormHandler.RegisterRoutes(protected)
			appHandlers.FormConfigurationHandler.RegisterRoutes(protected)
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware, adminMiddleware)
		{
			appHandlers.FormConfigurationHandler.RegisterAdminRoutes(admin)
		}
	}
}
