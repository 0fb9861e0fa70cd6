package service

import (
	"context" // Request scoped context
	"errors"  // Error inspection
	"strings" // String manipulation
	"time"    // Token lifetime

	"task_manager/internal/domain" // Importing domain models
	"task_manager/internal/store"  // Persistence
	"task_manager/internal/utils"  // JWT helpers

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// AuthService registers and authenticates users and manages profiles
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates an AuthService signing tokens with secret
func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{db: db, jwtSecret: secret, tokenTTL: ttl}
}

// Register creates a regular user after validating the credentials
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.NewValidationError("", "Username, email, and password are required")
	}
	if !domain.IsValidEmail(email) {
		return nil, domain.NewValidationError("email", "Invalid email format")
	}
	if !domain.IsValidPassword(password) {
		return nil, domain.NewValidationError("password", "Password must be at least 8 characters with uppercase, lowercase, and digit")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}
	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser, // Self-registration never grants admin
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := store.NewUserStore(tx)
		if err := checkUnique(users, username, email, 0); err != nil {
			return err
		}
		return users.Create(&user)
	})
	if errors.Is(err, store.ErrDuplicate) {
		// Lost a race with a concurrent registration
		return nil, domain.NewConflictError("", "Username or email already exists")
	}
	if err != nil {
		return nil, asServiceError(err, "Registration failed")
	}
	return &user, nil
}

// Login checks credentials against username or email and issues a token
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", domain.NewValidationError("", "Username and password are required")
	}
	user, err := store.NewUserStore(s.db.WithContext(ctx)).FindByLogin(identifier)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, "", domain.NewInternalError("Login failed", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.NewAuthenticationError("Invalid credentials")
	}
	token, err := utils.GenerateJWT(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to generate token", err)
	}
	return user, token, nil
}

// Profile loads the current user
func (s *AuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := store.NewUserStore(s.db.WithContext(ctx)).FindByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve profile", err)
	}
	return user, nil
}

// ProfileUpdate carries the optional profile fields
type ProfileUpdate struct {
	Username *string
	Email    *string
}

// UpdateProfile changes the username and/or email of the current user
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*domain.User, error) {
	if in.Username != nil && strings.TrimSpace(*in.Username) == "" {
		return nil, domain.NewValidationError("username", "Username cannot be empty")
	}
	if in.Email != nil && !domain.IsValidEmail(*in.Email) {
		return nil, domain.NewValidationError("email", "Invalid email format")
	}
	var user *domain.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := store.NewUserStore(tx)
		var err error
		if user, err = users.FindByID(userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.NewNotFoundError("User not found")
			}
			return err
		}
		var username, email string
		if in.Username != nil {
			username = *in.Username
		}
		if in.Email != nil {
			email = *in.Email
		}
		if err := checkUnique(users, username, email, user.ID); err != nil {
			return err
		}
		if in.Username != nil {
			user.Username = *in.Username
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		return users.Save(user)
	})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, domain.NewConflictError("", "Username or email already exists")
	}
	if err != nil {
		return nil, asServiceError(err, "Failed to update profile")
	}
	return user, nil
}

// ListUsers returns one page of users for administrators
func (s *AuthService) ListUsers(ctx context.Context, p Pagination) ([]domain.User, PageInfo, error) {
	users, total, err := store.NewUserStore(s.db.WithContext(ctx)).List(p.Offset(), p.PerPage)
	if err != nil {
		return nil, PageInfo{}, domain.NewInternalError("Failed to fetch users", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, newPageInfo(p, total), nil
}

// checkUnique rejects a username or email held by a user other than excludeID; empty values are skipped
func checkUnique(users *store.UserStore, username, email string, excludeID uint) error {
	if username != "" {
		taken, err := users.UsernameTaken(username, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewConflictError("username", "Username already exists")
		}
	}
	if email != "" {
		taken, err := users.EmailTaken(email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewConflictError("email", "Email already exists")
		}
	}
	return nil
}
