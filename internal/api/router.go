package api

import (
	"net/http" // HTTP status codes
	"time"     // Token lifetime

	"task_manager/internal/middleware" // Custom package for middleware
	"task_manager/internal/service"    // Business operations

	"github.com/gin-contrib/cors"                             // CORS middleware
	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics exposition
	"github.com/redis/go-redis/v9"                            // Redis client
	"gorm.io/gorm"                                            // GORM ORM library
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	DB          *gorm.DB      // Store handle
	Redis       *redis.Client // Token revocation list
	JWTSecret   string        // JWT signing key
	JWTTTL      time.Duration // JWT lifetime
	CORSOrigins []string      // Allowed origins, all when empty
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) *gin.Engine {
	registerValidators() // Custom binding tags

	authService := service.NewAuthService(d.DB, d.JWTSecret, d.JWTTTL) // Credentials and profiles
	taskService := service.NewTaskService(d.DB)                        // Task queries and mutations
	statsService := service.NewStatsService(d.DB)                      // Aggregates

	r := gin.Default() // Gin router instance
	r.Use(middleware.MetricsMiddleware(), cors.New(corsConfig(d.CORSOrigins)))

	// Service routes
	r.GET("/", indexHandler)
	r.GET("/health", healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.JWTAuthMiddleware(d.JWTSecret, d.Redis) // JWT protection
	apiGroup := r.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", RegisterHandler(authService))                 // Registration endpoint
	authGroup.POST("/login", LoginHandler(authService))                       // Login endpoint
	authGroup.POST("/logout", requireAuth, LogoutHandler(d.Redis))            // Logout endpoint
	authGroup.GET("/profile", requireAuth, ProfileHandler(authService))       // Profile endpoint
	authGroup.PUT("/profile", requireAuth, UpdateProfileHandler(authService)) // Profile update endpoint

	// Task routes (protected by JWT)
	taskGroup := apiGroup.Group("/tasks", requireAuth)
	taskGroup.GET("", ListTasksHandler(taskService))         // List tasks endpoint
	taskGroup.POST("", CreateTaskHandler(taskService))       // Create task endpoint
	taskGroup.GET("/:id", GetTaskHandler(taskService))       // Get task endpoint
	taskGroup.PUT("/:id", UpdateTaskHandler(taskService))    // Update task endpoint
	taskGroup.DELETE("/:id", DeleteTaskHandler(taskService)) // Delete task endpoint

	// Analytics routes (protected by JWT)
	analyticsGroup := apiGroup.Group("/analytics", requireAuth)
	analyticsGroup.GET("/statistics", StatisticsHandler(statsService))  // Role-routed statistics
	analyticsGroup.GET("/priority", PriorityStatsHandler(statsService)) // Counts per priority
	analyticsGroup.GET("/status", StatusStatsHandler(statsService))     // Counts per status

	// Admin routes (protected, admin only)
	adminGroup := apiGroup.Group("/admin", requireAuth, middleware.AdminOnlyMiddleware(d.DB))
	adminGroup.GET("/users", ListUsersHandler(authService)) // List users endpoint

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func indexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Task Management API",
		"endpoints": gin.H{
			"auth":      "/api/auth",
			"tasks":     "/api/tasks",
			"analytics": "/api/analytics",
			"health":    "/health",
		},
	})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Task Management API is running"})
}
