// Package policy decides which tasks an identity may see or change.
package policy

import "task_manager/internal/domain" // Importing domain models

// Scope is the subset of tasks visible to an identity when listing
type Scope struct {
	All     bool // Every task is visible
	OwnerID uint // Only tasks owned by this user, when All is false
}

// CanAccess reports whether identity may read, update or delete task
func CanAccess(identity domain.Identity, task domain.Task) bool {
	switch identity.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleUser:
		return task.OwnerID == identity.UserID
	default:
		// Unknown roles get the least privilege
		return task.OwnerID == identity.UserID
	}
}

// ListScope returns the listing scope for identity
func ListScope(identity domain.Identity) Scope {
	switch identity.Role {
	case domain.RoleAdmin:
		return Scope{All: true}
	case domain.RoleUser:
		return Scope{OwnerID: identity.UserID}
	default:
		return Scope{OwnerID: identity.UserID}
	}
}
