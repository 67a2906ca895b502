package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

// RegisterRoutes expects the group to already carry AuthMiddleware.
func (h *DocumentHandler) RegisterRoutes(r *gin.RouterGroup) {
	personal := r.Group("/personal-details/:personalId")
	{
		personal.POST("/documents", h.Upload)
		personal.GET("/documents", h.List)
	}

	documents := r.Group("/documents")
	{
		documents.GET("/:id", h.Get)
		documents.GET("/:id/download", h.Download)
		documents.PUT("/:id", h.Update)
		documents.DELETE("/:id", h.Delete)
	}
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'file' form field"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	upload := &services.DocumentUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	doc, err := h.documentService.Upload(c.Request.Context(), h.GetDB(c), principal, personalID, upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	personalID, ok := h.ParseParamUUID(c, "personalId")
	if !ok {
		return
	}

	docs, err := h.documentService.List(c.Request.Context(), h.GetDB(c), principal, personalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) Get(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	doc, err := h.documentService.Get(c.Request.Context(), h.GetDB(c), principal, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Download(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	doc, reader, err := h.documentService.Download(c.Request.Context(), h.GetDB(c), principal, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.DocumentName+`"`)
	c.DataFromReader(http.StatusOK, doc.Size, contentType, reader, nil)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), h.GetDB(c), principal, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUUID(c, "id")
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), h.GetDB(c), principal, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
