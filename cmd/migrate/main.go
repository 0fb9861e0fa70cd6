package main

import (
	"task_manager/internal/config" // Custom import path (Config)
	"task_manager/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	gdb, err := db.Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("%v", err) // Log fatal error if migration fails
	}
	// Seed the default admin when a password is configured
	if cfg.AdminPassword != "" {
		if err := db.SeedAdmin(gdb, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logrus.Fatalf("failed to seed admin: %v", err)
		}
	}
}
