package middleware

import (
	"errors"
	"strings"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/logger"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/pkg/apperrors"
	"wealthcoach_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and resolves the user on every
// request, so role changes and deletions take effect immediately rather than
// at token expiry.
func AuthMiddleware(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortWithError(c, apperrors.ErrTokenExpired)
			} else {
				abortWithError(c, apperrors.ErrInvalidToken)
			}
			return
		}

		db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		if !ok {
			abortWithError(c, apperrors.InternalError(errors.New("database not available in context")))
			return
		}

		user, err := userRepo.FindByID(db, claims.UserID)
		if err != nil {
			// A valid token for a deleted account is still unauthenticated.
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		principal := auth.Principal{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.RoleName(),
		}
		c.Set(string(contextkeys.PrincipalContextKey), principal)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles restricts a route group to the given roles. It runs after
// AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		principalVal, exists := c.Get(string(contextkeys.PrincipalContextKey))
		if !exists {
			abortWithError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		principal, ok := principalVal.(auth.Principal)
		if !ok || !roleSet[principal.Role] {
			abortWithError(c, apperrors.ErrAccessDenied)
			return
		}

		c.Next()
	}
}

// AdminMiddleware restricts a route group to admins.
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(auth.RoleAdmin)
}

func abortWithError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
	c.Abort()
}
