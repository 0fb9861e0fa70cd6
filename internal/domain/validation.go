package domain

import (
	"regexp"  // Regular expressions
	"strings" // String manipulation
	"time"    // Timestamp parsing
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`\d`)
)

// IsValidEmail checks the email against the registration pattern
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword checks the password is at least 8 characters with upper, lower and digit
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return upperPattern.MatchString(password) &&
		lowerPattern.MatchString(password) &&
		digitPattern.MatchString(password)
}

// Accepted ISO-8601 layouts for due dates, tried in order
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseDueDate parses an ISO-8601 timestamp; values without a zone are taken as UTC
func ParseDueDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
