package api

import (
	"net/http" // HTTP status codes
	"time"     // Token expiry

	"task_manager/internal/domain"     // Importing domain models
	"task_manager/internal/middleware" // Context keys
	"task_manager/internal/service"    // Business operations
	"task_manager/internal/utils"      // Token revocation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`                // Username must be provided
	Email    string `json:"email" binding:"required,emailformat"`       // Email must be well formed
	Password string `json:"password" binding:"required,strongpassword"` // Password must be strong
}

// Request struct for login, username may also hold an email
type LoginRequest struct {
	Username string `json:"username"` // Username or email
	Email    string `json:"email"`    // Alternative to username
	Password string `json:"password"` // Password must be provided
}

// Request struct for profile updates, absent fields are left unchanged
type UpdateProfileRequest struct {
	Username *string `json:"username"` // New username
	Email    *string `json:"email"`    // New email
}

// RegisterHandler creates a regular user account
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			respondError(c, bindingError(err, "Username, email, and password are required"))
			return
		}
		user, err := auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // User ID
			"username": user.Username, // Username
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, domain.NewValidationError("", "Username and password are required"))
			return
		}
		identifier := req.Username // Username or email
		if identifier == "" {
			identifier = req.Email
		}
		user, token, err := auth.Login(c.Request.Context(), identifier, req.Password)
		if err != nil {
			if domain.KindOf(err) == domain.KindAuthentication {
				logrus.WithField("login", identifier).Warn("Failed login attempt")
			}
			respondError(c, err)
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "access_token": token, "user": user})
	}
}

// LogoutHandler revokes the presented token until it would have expired
func LogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(middleware.ContextClaims).(*utils.Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		ttl := time.Until(claims.ExpiresAt.Time) // Remaining token lifetime
		if err := utils.RevokeToken(c.Request.Context(), rdb, claims.ID, ttl); err != nil {
			respondError(c, domain.NewInternalError("Logout failed", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}

// ProfileHandler returns the current user
func ProfileHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		user, err := auth.Profile(c.Request.Context(), identity.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// UpdateProfileHandler changes the current user's username and/or email
func UpdateProfileHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, domain.NewValidationError("", "Invalid request body"))
			return
		}
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		user, err := auth.UpdateProfile(c.Request.Context(), identity.UserID, service.ProfileUpdate{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
	}
}
