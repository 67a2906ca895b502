package handlers

import (
	"fmt"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/logger"
	"wealthcoach_backend/internal/validator"
	"wealthcoach_backend/pkg/apperrors"
	"wealthcoach_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB pulls the request's *gorm.DB (pool or per-request transaction) out of
// the gin context. DBMiddleware must have run.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// GetPrincipal returns the authenticated principal set by AuthMiddleware.
func (h *BaseHandler) GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	val, exists := c.Get(string(contextkeys.PrincipalContextKey))
	if !exists {
		logger.CtxWarn(c.Request.Context(), "principal not found in context", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return auth.Principal{}, false
	}

	principal, ok := val.(auth.Principal)
	if !ok {
		logger.CtxWarn(c.Request.Context(), "invalid principal in context", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return auth.Principal{}, false
	}

	return principal, true
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		if vErr, ok := h.validator.TranslateBindingError(err); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidator(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		if vErr, ok := h.validator.TranslateBindingError(err); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.runValidator(c, obj)
}

func (h *BaseHandler) runValidator(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ParseParamUUID reads a path parameter and checks it is a UUID. Writes the
// error response itself on failure.
func (h *BaseHandler) ParseParamUUID(c *gin.Context, key string) (string, bool) {
	value := c.Param(key)
	if value == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required path parameter: "+key))
		return "", false
	}
	if _, err := uuid.Parse(value); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid path parameter: "+key+" is not a UUID"))
		return "", false
	}
	return value, true
}
