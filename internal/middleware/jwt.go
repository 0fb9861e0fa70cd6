package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"task_manager/internal/domain" // Importing domain models
	"task_manager/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "userID"   // uint
	ContextIdentity = "identity" // domain.Identity
	ContextClaims   = "claims"   // *utils.Claims
)

// JWTAuthMiddleware validates JWT tokens and extracts the caller identity
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		// Reject tokens revoked by logout
		revoked, err := utils.IsTokenRevoked(c.Request.Context(), rdb, claims.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID, // User ID
				"error":   err.Error(),   // Error message
			}).Error("Revocation check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify token", "error": err.Error()})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has been revoked"})
			return
		}
		c.Set(ContextUserID, claims.UserID)       // Store userID in context
		c.Set(ContextIdentity, claims.Identity()) // Store identity in context
		c.Set(ContextClaims, claims)              // Store raw claims for logout
		c.Next()                                  // Proceed to the next handler
	}
}

// IdentityFrom returns the identity stored by JWTAuthMiddleware
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
