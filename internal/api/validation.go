package api

import (
	"errors" // Error inspection
	"fmt"    // Error formatting
	"sync"   // One-time registration

	"task_manager/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin/binding"       // Gin binding engine
	"github.com/go-playground/validator/v10" // Struct validation
)

var registerOnce sync.Once

// credentialRules are the binding tags used by the auth requests
var credentialRules = map[string]func(string) bool{
	"emailformat":    domain.IsValidEmail,    // Email shape
	"strongpassword": domain.IsValidPassword, // Password strength
}

// registerValidators adds the credential rules to gin's validator as binding tags.
// It panics when they cannot be registered.
func registerValidators() {
	registerOnce.Do(func() {
		if err := registerRules(binding.Validator.Engine()); err != nil {
			panic(err)
		}
	})
}

func registerRules(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", engine)
	}
	for tag, rule := range credentialRules {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// bindingError converts a ShouldBindJSON failure into a validation error.
// Missing fields win over format errors so the message matches the first failed rule.
func bindingError(err error, requiredMessage string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("", "Invalid request body")
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return domain.NewValidationError("", requiredMessage)
		}
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "emailformat":
			return domain.NewValidationError("email", "Invalid email format")
		case "strongpassword":
			return domain.NewValidationError("password", "Password must be at least 8 characters with uppercase, lowercase, and digit")
		}
	}
	return domain.NewValidationError("", "Invalid request body")
}
