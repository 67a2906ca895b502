package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PersonalDetailsHandler struct {
	*BaseHandler
	personalService   services.PersonalDetailsService
	completionService services.ProfileCompletionService
}

func NewPersonalDetailsHandler(
	base *BaseHandler,
	personalService services.PersonalDetailsService,
	completionService services.ProfileCompletionService,
) *PersonalDetailsHandler {
	return &PersonalDetailsHandler{
		BaseHandler:       base,
		personalService:   personalService,
		completionService: completionService,
	}
}

// RegisterRoutes expects the group to already carry AuthMiddleware.
func (h *PersonalDetailsHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/personal-details")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/me", h.GetOwn)
		group.GET("/:personalId", h.GetByID)
		group.PUT("/:personalId", h.Update)
		group.DELETE("/:personalId", h.Delete)
		group.GET("/:personalId/completion", h.GetCompletion)
	}

	r.GET("/profile-completion", h.GetOwnCompletion)
}

func (h *PersonalDetailsHandler) Create(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreatePersonalDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	details, err := h.personalService.Create(h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, details)
}

func (h *PersonalDetailsHandler) List(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	records, err := h.personalService.List(h.GetDB(c), principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"personal_details": records})
}

func (h *PersonalDetailsHandler) GetOwn(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	details, err := h.personalService.GetOwn(h.GetDB(c), principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *PersonalDetailsHandler) GetByID(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	details, err := h.personalService.GetByID(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *PersonalDetailsHandler) Update(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	var req dto.UpdatePersonalDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	details, err := h.personalService.Update(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *PersonalDetailsHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	if err := h.personalService.Delete(h.GetDB(c), principal, personalID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Personal details deleted"})
}

func (h *PersonalDetailsHandler) GetCompletion(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	completion, err := h.completionService.GetByPersonalID(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}

func (h *PersonalDetailsHandler) GetOwnCompletion(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	completion, err := h.completionService.GetOwn(h.GetDB(c), principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}
