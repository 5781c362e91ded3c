package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/scheffer1/CVFast-sub000/internal/delivery/http/response"
	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/pkg/auth"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	// Fall back to the cookie the SPA sets
	cookie, err := c.Cookie("auth_token")
	if err == nil && cookie != "" {
		return cookie
	}
	return ""
}

func stampUser(c *gin.Context, claims *auth.Claims) {
	c.Set(string(domain.KeyUserID), claims.Subject)
	c.Set(string(domain.KeyUserEmail), claims.Email)

	// Mirror into the request context so usecases reading
	// ctx.Value(domain.KeyUserID) work from any context, not just gin's.
	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.Subject)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, claims.Email)
	c.Request = c.Request.WithContext(ctx)
}

// AuthMiddleware rejects requests without a valid token and verifies the
// user still exists before stamping identity onto the context.
func AuthMiddleware(tokens *auth.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Tokens outlive accounts; confirm the user is still in the DB.
		if _, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject); err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		stampUser(c, claims)
		c.Next()
	}
}

// OptionalAuth stamps identity when a valid token is present but lets
// anonymous requests through untouched. The resolution endpoints use it:
// owners get owner-visibility, everyone else gets the public policy.
func OptionalAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString != "" {
			if claims, err := tokens.Verify(tokenString); err == nil {
				stampUser(c, claims)
			}
			// An invalid token on an optional route degrades to anonymous
			// rather than failing the request.
		}
		c.Next()
	}
}
