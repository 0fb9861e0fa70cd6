package domain

import "time" // Timestamps

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                                    // Primary key
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"`            // Unique username
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`              // Unique email
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                              // Hashed password, never serialized
	Role         Role      `gorm:"size:20;not null;default:user" json:"role"`               // Role: user or admin
	Tasks        []Task    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"` // One-to-many relationship with Task
	CreatedAt    time.Time `json:"created_at"`                                              // Timestamp of creation
	UpdatedAt    time.Time `json:"updated_at"`                                              // Timestamp of last profile change
}

// Identity is the authenticated caller extracted from a token
type Identity struct {
	UserID uint // Stable user id
	Role   Role // Role claim
}

// IsAdmin reports whether the identity carries the admin capability
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
