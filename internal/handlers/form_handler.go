package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormHandler serves the insurance and loan contract forms. The forms of the
// authenticated user are addressed implicitly; coaches and admins select a
// client with the user_id query parameter.
type FormHandler struct {
	*BaseHandler
	formService services.FormService
}

func NewFormHandler(base *BaseHandler, formService services.FormService) *FormHandler {
	return &FormHandler{
		BaseHandler: base,
		formService: formService,
	}
}

// RegisterRoutes expects the group to already carry AuthMiddleware.
func (h *FormHandler) RegisterRoutes(r *gin.RouterGroup) {
	forms := r.Group("/forms")
	{
		forms.POST("/kfz", h.CreateKfz)
		forms.GET("/kfz", h.ListKfz)
		forms.PUT("/kfz/:id", h.UpdateKfz)
		forms.DELETE("/kfz/:id", h.DeleteKfz)

		forms.POST("/loans", h.CreateLoan)
		forms.GET("/loans", h.ListLoans)
		forms.PUT("/loans/:id", h.UpdateLoan)
		forms.DELETE("/loans/:id", h.DeleteLoan)

		forms.POST("/immobilien", h.CreateImmobilien)
		forms.GET("/immobilien", h.ListImmobilien)
		forms.PUT("/immobilien/:id", h.UpdateImmobilien)
		forms.DELETE("/immobilien/:id", h.DeleteImmobilien)

		forms.POST("/private-health", h.CreatePrivateHealth)
		forms.GET("/private-health", h.ListPrivateHealth)
		forms.PUT("/private-health/:id", h.UpdatePrivateHealth)
		forms.DELETE("/private-health/:id", h.DeletePrivateHealth)

		forms.POST("/state-health", h.CreateStateHealth)
		forms.GET("/state-health", h.ListStateHealth)
		forms.PUT("/state-health/:id", h.UpdateStateHealth)
		forms.DELETE("/state-health/:id", h.DeleteStateHealth)
	}
}

// resolveUserID picks the target user: the user_id query parameter when
// given, otherwise the principal. The service layer decides whether the
// principal may act on that user.
func (h *FormHandler) resolveUserID(c *gin.Context, principal auth.Principal) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		return principal.ID, true
	}
	if _, err := uuid.Parse(userID); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid user_id query parameter"))
		return "", false
	}
	return userID, true
}

// Kfz

func (h *FormHandler) CreateKfz(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}
	var req dto.KfzFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.CreateKfz(h.GetDB(c), principal, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *FormHandler) ListKfz(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}

	forms, err := h.formService.ListKfz(h.GetDB(c), principal, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *FormHandler) UpdateKfz(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.KfzFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.UpdateKfz(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) DeleteKfz(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.formService.DeleteKfz(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}

// Loans

func (h *FormHandler) CreateLoan(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}
	var req dto.LoanFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.CreateLoan(h.GetDB(c), principal, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *FormHandler) ListLoans(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}

	forms, err := h.formService.ListLoans(h.GetDB(c), principal, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *FormHandler) UpdateLoan(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.LoanFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.UpdateLoan(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) DeleteLoan(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.formService.DeleteLoan(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}

// Real estate

func (h *FormHandler) CreateImmobilien(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}
	var req dto.ImmobilienFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.CreateImmobilien(h.GetDB(c), principal, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *FormHandler) ListImmobilien(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}

	forms, err := h.formService.ListImmobilien(h.GetDB(c), principal, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *FormHandler) UpdateImmobilien(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ImmobilienFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.UpdateImmobilien(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) DeleteImmobilien(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.formService.DeleteImmobilien(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}

// Private health insurance

func (h *FormHandler) CreatePrivateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}
	var req dto.PrivateHealthFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.CreatePrivateHealth(h.GetDB(c), principal, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *FormHandler) ListPrivateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}

	forms, err := h.formService.ListPrivateHealth(h.GetDB(c), principal, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *FormHandler) UpdatePrivateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.PrivateHealthFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.UpdatePrivateHealth(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) DeletePrivateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.formService.DeletePrivateHealth(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}

// State health insurance

func (h *FormHandler) CreateStateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}
	var req dto.StateHealthFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.CreateStateHealth(h.GetDB(c), principal, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *FormHandler) ListStateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.resolveUserID(c, principal)
	if !ok {
		return
	}

	forms, err := h.formService.ListStateHealth(h.GetDB(c), principal, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *FormHandler) UpdateStateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.StateHealthFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.UpdateStateHealth(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) DeleteStateHealth(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.formService.DeleteStateHealth(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}
