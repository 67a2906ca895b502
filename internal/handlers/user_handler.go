package handlers

import (
	"net/http"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/middleware"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services"
	"wealthcoach_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin user-management endpoints.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
	tokenIssuer *auth.TokenIssuer
	userRepo    repositories.UserRepository
}

func NewUserHandler(
	base *BaseHandler,
	userService services.UserService,
	tokenIssuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		tokenIssuer: tokenIssuer,
		userRepo:    userRepo,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.tokenIssuer, h.userRepo), middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users/:userId", h.GetUser)
		admin.PUT("/users/:userId", h.UpdateUser)
		admin.DELETE("/users/:userId", h.DeleteUser)
		admin.GET("/roles", h.ListRoles)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.ListUsersRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.userService.ListUsers(h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.AdminCreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.ParseParamUUID(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(h.GetDB(c), principal, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.ParseParamUUID(c, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(h.GetDB(c), principal, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := h.ParseParamUUID(c, "userId")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(h.GetDB(c), principal, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *UserHandler) ListRoles(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	roles, err := h.userService.ListRoles(h.GetDB(c), principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}
