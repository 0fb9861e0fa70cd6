package api

import (
	"net/http" // HTTP status codes

	"task_manager/internal/domain"  // Importing domain models
	"task_manager/internal/service" // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID       uint        `json:"id"`       // User ID
	Username string      `json:"username"` // Username
	Email    string      `json:"email"`    // Email
	Role     domain.Role `json:"role"`     // User role
}

// ListUsersHandler returns all users, paginated
func ListUsersHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := service.NewPagination(queryInt(c, "page", 1), queryInt(c, "per_page", 20))
		users, info, err := auth.ListUsers(c.Request.Context(), page)
		if err != nil {
			respondError(c, err)
			return
		}
		// Map users to response format
		resp := make([]UserAdminResponse, len(users))
		for i, u := range users {
			resp[i] = UserAdminResponse{
				ID:       u.ID,       // User ID
				Username: u.Username, // Username
				Email:    u.Email,    // Email
				Role:     u.Role,     // User role
			}
		}
		c.JSON(http.StatusOK, gin.H{"users": resp, "pagination": info})
	}
}
