package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ClientDataHandler serves the financial sections hanging off a client
// profile. Creation and listing are nested under the profile; record-level
// updates and deletes address the record directly.
type ClientDataHandler struct {
	*BaseHandler
	clientDataService services.ClientDataService
}

func NewClientDataHandler(base *BaseHandler, clientDataService services.ClientDataService) *ClientDataHandler {
	return &ClientDataHandler{
		BaseHandler:       base,
		clientDataService: clientDataService,
	}
}

// RegisterRoutes expects the group to already carry AuthMiddleware.
func (h *ClientDataHandler) RegisterRoutes(r *gin.RouterGroup) {
	personal := r.Group("/personal-details/:personalId")
	{
		personal.POST("/employment", h.CreateEmployment)
		personal.GET("/employment", h.ListEmployment)
		personal.POST("/income", h.CreateIncome)
		personal.GET("/income", h.ListIncome)
		personal.POST("/expenses", h.CreateExpenses)
		personal.GET("/expenses", h.ListExpenses)
		personal.POST("/assets", h.CreateAsset)
		personal.GET("/assets", h.ListAssets)
		personal.POST("/liabilities", h.CreateLiability)
		personal.GET("/liabilities", h.ListLiabilities)
		personal.PUT("/goals", h.SetGoals)
		personal.GET("/goals", h.GetGoals)
		personal.PUT("/risk-appetite", h.SetRiskAppetite)
		personal.GET("/risk-appetite", h.GetRiskAppetite)
		personal.POST("/consents", h.CreateConsent)
		personal.GET("/consents", h.ListConsents)
	}

	r.PUT("/employment/:id", h.UpdateEmployment)
	r.DELETE("/employment/:id", h.DeleteEmployment)
	r.PUT("/income/:id", h.UpdateIncome)
	r.DELETE("/income/:id", h.DeleteIncome)
	r.PUT("/expenses/:id", h.UpdateExpenses)
	r.DELETE("/expenses/:id", h.DeleteExpenses)
	r.PUT("/assets/:id", h.UpdateAsset)
	r.DELETE("/assets/:id", h.DeleteAsset)
	r.PUT("/liabilities/:id", h.UpdateLiability)
	r.DELETE("/liabilities/:id", h.DeleteLiability)
	r.DELETE("/goals/:id", h.DeleteGoals)
	r.DELETE("/risk-appetite/:id", h.DeleteRiskAppetite)
	r.PUT("/consents/:id", h.UpdateConsent)
	r.DELETE("/consents/:id", h.DeleteConsent)
}

// Employment

func (h *ClientDataHandler) CreateEmployment(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.EmploymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.CreateEmployment(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ClientDataHandler) ListEmployment(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	records, err := h.clientDataService.ListEmployment(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employment_details": records})
}

func (h *ClientDataHandler) UpdateEmployment(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.EmploymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.UpdateEmployment(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteEmployment(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteEmployment(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employment record deleted"})
}

// Income

func (h *ClientDataHandler) CreateIncome(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.IncomeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.CreateIncome(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ClientDataHandler) ListIncome(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	records, err := h.clientDataService.ListIncome(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"income_details": records})
}

func (h *ClientDataHandler) UpdateIncome(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.IncomeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.UpdateIncome(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteIncome(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteIncome(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Income record deleted"})
}

// Expenses

func (h *ClientDataHandler) CreateExpenses(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.ExpensesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.CreateExpenses(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ClientDataHandler) ListExpenses(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	records, err := h.clientDataService.ListExpenses(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses_details": records})
}

func (h *ClientDataHandler) UpdateExpenses(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ExpensesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.UpdateExpenses(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteExpenses(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteExpenses(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expenses record deleted"})
}

// Assets

func (h *ClientDataHandler) CreateAsset(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.AssetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.CreateAsset(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ClientDataHandler) ListAssets(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	records, err := h.clientDataService.ListAssets(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": records})
}

func (h *ClientDataHandler) UpdateAsset(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AssetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.UpdateAsset(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteAsset(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteAsset(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset record deleted"})
}

// Liabilities

func (h *ClientDataHandler) CreateLiability(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.LiabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.CreateLiability(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ClientDataHandler) ListLiabilities(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	records, err := h.clientDataService.ListLiabilities(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liabilities": records})
}

func (h *ClientDataHandler) UpdateLiability(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.LiabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.UpdateLiability(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteLiability(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteLiability(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liability record deleted"})
}

// Goals and wishes

func (h *ClientDataHandler) SetGoals(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.GoalsAndWishesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.SetGoals(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) GetGoals(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	record, err := h.clientDataService.GetGoals(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteGoals(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteGoals(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goals record deleted"})
}

// Risk appetite

func (h *ClientDataHandler) SetRiskAppetite(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.RiskAppetiteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.SetRiskAppetite(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) GetRiskAppetite(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	record, err := h.clientDataService.GetRiskAppetite(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteRiskAppetite(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteRiskAppetite(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Risk appetite record deleted"})
}

// Consents

func (h *ClientDataHandler) CreateConsent(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}
	var req dto.ConsentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.CreateConsent(h.GetDB(c), principal, personalID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ClientDataHandler) ListConsents(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	records, err := h.clientDataService.ListConsents(h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consents": records})
}

func (h *ClientDataHandler) UpdateConsent(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ConsentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.clientDataService.UpdateConsent(h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ClientDataHandler) DeleteConsent(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientDataService.DeleteConsent(h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consent record deleted"})
}
