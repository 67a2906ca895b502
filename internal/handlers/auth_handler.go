package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/middleware"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokenIssuer *auth.TokenIssuer
	userRepo    repositories.UserRepository
}

func NewAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	tokenIssuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokenIssuer: tokenIssuer,
		userRepo:    userRepo,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/verify-email", h.VerifyEmail)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
	}

	me := r.Group("/auth")
	me.Use(middleware.AuthMiddleware(h.tokenIssuer, h.userRepo))
	{
		me.GET("/me", h.Me)
		me.PUT("/profile", h.UpdateProfile)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	// The frontend relays the token from the mailed link, either in the
	// query string or as a json body.
	token := c.Query("token")
	if token == "" {
		var req dto.VerifyEmailRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.Token
		}
	}
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing token"))
		return
	}

	if err := h.authService.VerifyEmail(h.GetDB(c), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(h.GetDB(c), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(h.GetDB(c), req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	user, err := h.authService.GetCurrentUser(h.GetDB(c), principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.UpdateProfile(h.GetDB(c), principal.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
