package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBDriver      string        // Database driver: mysql or sqlite
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name
	SQLitePath    string        // SQLite database file
	JWTSecret     string        // JWT secret key
	JWTTTL        time.Duration // JWT lifetime
	RedisAddr     string        // Redis server address
	RedisPass     string        // Redis password
	RedisDB       int           // Redis database number
	IsProd        bool          // Is production environment
	LogLevel      string        // Logrus level name
	CORSOrigins   []string      // Allowed CORS origins
	AdminUsername string        // Seeded admin username
	AdminEmail    string        // Seeded admin email
	AdminPassword string        // Seeded admin password, seeding is skipped when empty
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := time.ParseDuration(os.Getenv("JWT_TTL"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour // Default token lifetime
	}
	return &Config{
		AppPort:       getEnv("APP_PORT", "5000"),                 // Application port
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),              // Database driver
		DBUser:        os.Getenv("DB_USER"),                       // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                   // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),             // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                  // Database port
		DBName:        os.Getenv("DB_NAME"),                       // Database name
		SQLitePath:    getEnv("SQLITE_PATH", "task_manager.db"),   // SQLite file
		JWTSecret:     os.Getenv("JWT_SECRET"),                    // JWT secret key
		JWTTTL:        ttl,                                        // JWT lifetime
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),     // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                    // Redis password
		RedisDB:       redisDB,                                    // Redis database number
		IsProd:        os.Getenv("IS_PROD") == "true",             // Is production environment
		LogLevel:      getEnv("LOG_LEVEL", "info"),                // Log level
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),       // Allowed origins
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),          // Seeded admin username
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"), // Seeded admin email
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),                // Seeded admin password
	}
}

// DSN builds the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the variable or fallback when it is unset or empty
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
