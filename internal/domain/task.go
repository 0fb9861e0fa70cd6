package domain

import "time" // Timestamps

// TaskStatus is the closed set of task states
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"     // Default state
	StatusInProgress TaskStatus = "in_progress" // Work has started
	StatusCompleted  TaskStatus = "completed"   // Done
)

// TaskStatuses lists every status in display order
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

// ParseTaskStatus validates a raw status value
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	switch TaskStatus(raw) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(raw), true
	}
	return "", false
}

// TaskPriority is the closed set of task priorities
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"    // Low priority
	PriorityMedium TaskPriority = "medium" // Default priority
	PriorityHigh   TaskPriority = "high"   // High priority
)

// TaskPriorities lists every priority in display order
var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

// ParseTaskPriority validates a raw priority value
func ParseTaskPriority(raw string) (TaskPriority, bool) {
	switch TaskPriority(raw) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(raw), true
	}
	return "", false
}

// Task Model
type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`                                  // Primary key
	Title       string       `gorm:"size:200;not null" json:"title"`                        // Task title
	Description string       `gorm:"type:text" json:"description"`                          // Optional description
	Status      TaskStatus   `gorm:"size:20;not null;default:pending;index" json:"status"`  // pending, in_progress, completed
	Priority    TaskPriority `gorm:"size:20;not null;default:medium;index" json:"priority"` // low, medium, high
	DueDate     *time.Time   `json:"due_date"`                                              // Optional due date
	CreatedAt   time.Time    `gorm:"index" json:"created_at"`                               // Timestamp of creation
	UpdatedAt   time.Time    `json:"updated_at"`                                            // Refreshed on every mutation
	OwnerID     uint         `gorm:"column:user_id;not null;index" json:"user_id"`          // Foreign key to User
}
