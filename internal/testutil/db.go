// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing" // Test helpers

	"task_manager/internal/domain" // Importing domain models

	"github.com/glebarez/sqlite" // Pure Go SQLite driver for GORM
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // Silence SQL logging
)

// NewDB returns a migrated in-memory database closed with the test
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1) // Every connection to :memory: is a separate database
	t.Cleanup(func() { sqlDB.Close() })
	if err := db.AutoMigrate(&domain.User{}, &domain.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateUser inserts a user with the given role and password
func CreateUser(t *testing.T, db *gorm.DB, username string, role domain.Role, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &domain.User{Username: username, Email: username + "@example.com", PasswordHash: string(hash), Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// CreateTask inserts a task directly, bypassing validation
func CreateTask(t *testing.T, db *gorm.DB, task domain.Task) *domain.Task {
	t.Helper()
	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}
	return &task
}
