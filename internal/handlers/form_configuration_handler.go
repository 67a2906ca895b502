package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// FormConfigurationHandler exposes the dynamic form schemas. Reads are
// available to any authenticated user; the write routes are registered
// separately under the admin group.
type FormConfigurationHandler struct {
	*BaseHandler
	configService services.FormConfigurationService
}

func NewFormConfigurationHandler(base *BaseHandler, configService services.FormConfigurationService) *FormConfigurationHandler {
	return &FormConfigurationHandler{
		BaseHandler:   base,
		configService: configService,
	}
}

// RegisterRoutes expects the group to already carry AuthMiddleware.
func (h *FormConfigurationHandler) RegisterRoutes(r *gin.RouterGroup) {
	configs := r.Group("/form-configurations")
	{
		configs.GET("", h.List)
		configs.GET("/:id", h.Get)
	}
}

// RegisterAdminRoutes expects the group to carry AuthMiddleware and
// AdminMiddleware.
func (h *FormConfigurationHandler) RegisterAdminRoutes(r *gin.RouterGroup) {
	configs := r.Group("/form-configurations")
	{
		configs.POST("", h.Create)
		configs.PUT("/:id", h.Update)
		configs.DELETE("/:id", h.Delete)
	}
}

func (h *FormConfigurationHandler) List(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	includeInactive := c.Query("include_inactive") == "true"

	configs, err := h.configService.List(h.GetDB(c), principal, includeInactive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form_configurations": configs})
}

func (h *FormConfigurationHandler) Get(c *gin.Context) {
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	cfg, err := h.configService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *FormConfigurationHandler) Create(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.FormConfigurationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cfg, err := h.configService.Create(h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

func (h *FormConfigurationHandler) Update(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.FormConfigurationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cfg, err := h.configService.Update(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *FormConfigurationHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.configService.Delete(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form configuration deleted"})
}
