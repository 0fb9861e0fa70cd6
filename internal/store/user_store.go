package store

import (
	"task_manager/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserStore is the credential store
type UserStore struct {
	db *gorm.DB
}

// NewUserStore returns a store bound to db, which may be a transaction
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user
func (s *UserStore) Create(user *domain.User) error {
	return translate(s.db.Create(user).Error)
}

// Save writes every column of an existing user
func (s *UserStore) Save(user *domain.User) error {
	return translate(s.db.Save(user).Error)
}

// FindByID loads a user by primary key
func (s *UserStore) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByLogin loads a user whose username or email equals identifier
func (s *UserStore) FindByLogin(identifier string) (*domain.User, error) {
	var user domain.User
	err := s.db.Where("username = ? OR email = ?", identifier, identifier).
		Order("id").
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UsernameTaken reports whether another user already holds username
func (s *UserStore) UsernameTaken(username string, excludeID uint) (bool, error) {
	return s.exists("username = ?", username, excludeID)
}

// EmailTaken reports whether another user already holds email
func (s *UserStore) EmailTaken(email string, excludeID uint) (bool, error) {
	return s.exists("email = ?", email, excludeID)
}

func (s *UserStore) exists(cond string, value string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&domain.User{}).Where(cond, value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID) // Ignore the user being updated
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of users ordered by id, plus the total count
func (s *UserStore) List(offset, limit int) ([]domain.User, int64, error) {
	var total int64
	if err := s.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := s.db.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
