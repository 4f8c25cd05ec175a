package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ricemill/internal/core/apperror"
	appctx "ricemill/internal/core/context"
	"ricemill/internal/domain/auth"
)

// Auth middleware verifies the bearer token and stores the user in the
// request context.
func Auth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			_ = c.Error(apperror.NewUnauthorized("missing bearer token"))
			c.Abort()
			return
		}

		claims, err := authService.Verify(token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{
			UserID: claims.UserID.String(),
			Email:  claims.Email,
			Role:   string(claims.Role),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole restricts a route to one of the given roles.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("not authenticated"))
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == string(role) {
				c.Next()
				return
			}
		}
		_ = c.Error(apperror.NewForbidden("insufficient role"))
		c.Abort()
	}
}
