package api

import (
	"net/http"
	"strings"

	"marketplace-api/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth
const (
	ctxUserID   = "userID"
	ctxUsername = "username"
	ctxUserType = "userType"
)

// RequireAuth rejects requests without a valid Bearer access token and
// attaches the caller's identity to the request context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token header. Expected 'Bearer <token>'."})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired."})
			return
		}
		if claims.TokenType != auth.TokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token has wrong type."})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxUserType, claims.UserType)
		c.Next()
	}
}

// currentUserID returns the authenticated caller's id. Routes behind
// RequireAuth always have it set.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}
