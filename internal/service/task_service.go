package service

import (
	"context" // Request scoped context
	"errors"  // Error inspection
	"strings" // String manipulation
	"time"    // Timestamps

	"task_manager/internal/domain" // Importing domain models
	"task_manager/internal/policy" // Access policy
	"task_manager/internal/store"  // Persistence

	"gorm.io/gorm" // GORM ORM library
)

// TaskQuery holds the raw listing filters
type TaskQuery struct {
	Status   string // Empty means no status filter
	Priority string // Empty means no priority filter
	Search   string // Empty means no search
}

// TaskPage is one page of a task listing
type TaskPage struct {
	Tasks      []domain.Task
	Pagination PageInfo
}

// TaskInput carries client supplied task fields.
// A nil pointer means the field was absent; an empty string means null or empty.
type TaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string
}

// TaskService is the task query engine and mutation layer
type TaskService struct {
	db *gorm.DB
}

// NewTaskService creates a TaskService over db
func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// ListTasks returns the page of tasks visible to identity that match q
func (s *TaskService) ListTasks(ctx context.Context, identity domain.Identity, q TaskQuery, p Pagination) (*TaskPage, error) {
	filter, err := parseTaskQuery(q) // Reject bad filters before touching the store
	if err != nil {
		return nil, err
	}
	scope := policy.ListScope(identity)
	tasks, total, err := store.NewTaskStore(s.db.WithContext(ctx)).List(scope, filter, p.Offset(), p.PerPage)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{} // Serialize as [] rather than null
	}
	return &TaskPage{Tasks: tasks, Pagination: newPageInfo(p, total)}, nil
}

// GetTask loads one task the identity may access
func (s *TaskService) GetTask(ctx context.Context, identity domain.Identity, id uint) (*domain.Task, error) {
	return loadAuthorized(store.NewTaskStore(s.db.WithContext(ctx)), identity, id)
}

// CreateTask validates input and stores a new task owned by identity
func (s *TaskService) CreateTask(ctx context.Context, identity domain.Identity, in TaskInput) (*domain.Task, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}
	task := domain.Task{
		Status:   domain.StatusPending,  // Default status
		Priority: domain.PriorityMedium, // Default priority
		OwnerID:  identity.UserID,       // Owner is always the caller
	}
	if err := applyTaskInput(&task, in); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return store.NewTaskStore(tx).Create(&task)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to create task", err)
	}
	return &task, nil
}

// UpdateTask applies the present fields of in to a task the identity may access
func (s *TaskService) UpdateTask(ctx context.Context, identity domain.Identity, id uint, in TaskInput) (*domain.Task, error) {
	var task *domain.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := store.NewTaskStore(tx)
		var err error
		if task, err = loadAuthorized(tasks, identity, id); err != nil {
			return err
		}
		if err := applyTaskInput(task, in); err != nil {
			return err
		}
		task.UpdatedAt = time.Now() // Refreshed even when no field changed
		return tasks.Save(task)
	})
	if err != nil {
		return nil, asServiceError(err, "Failed to update task")
	}
	return task, nil
}

// DeleteTask permanently removes a task the identity may access
func (s *TaskService) DeleteTask(ctx context.Context, identity domain.Identity, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := store.NewTaskStore(tx)
		task, err := loadAuthorized(tasks, identity, id)
		if err != nil {
			return err
		}
		return tasks.Delete(task)
	})
	if err != nil {
		return asServiceError(err, "Failed to delete task")
	}
	return nil
}

// loadAuthorized distinguishes a missing task from a forbidden one
func loadAuthorized(tasks *store.TaskStore, identity domain.Identity, id uint) (*domain.Task, error) {
	task, err := tasks.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.NewNotFoundError("Task not found")
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve task", err)
	}
	if !policy.CanAccess(identity, *task) {
		return nil, domain.NewAuthorizationError("Access denied")
	}
	return task, nil
}

func parseTaskQuery(q TaskQuery) (store.TaskFilter, error) {
	var filter store.TaskFilter
	if q.Status != "" {
		status, ok := domain.ParseTaskStatus(q.Status)
		if !ok {
			return filter, invalidStatus()
		}
		filter.Status = &status
	}
	if q.Priority != "" {
		priority, ok := domain.ParseTaskPriority(q.Priority)
		if !ok {
			return filter, invalidPriority()
		}
		filter.Priority = &priority
	}
	filter.Search = q.Search
	return filter, nil
}

// applyTaskInput validates every present field and copies it onto task.
// Nothing is written to task unless all fields are valid.
func applyTaskInput(task *domain.Task, in TaskInput) error {
	next := *task
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return domain.NewValidationError("title", "title cannot be empty")
		}
		next.Title = *in.Title
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.Status != nil {
		status, ok := domain.ParseTaskStatus(*in.Status)
		if !ok {
			return invalidStatus()
		}
		next.Status = status
	}
	if in.Priority != nil {
		priority, ok := domain.ParseTaskPriority(*in.Priority)
		if !ok {
			return invalidPriority()
		}
		next.Priority = priority
	}
	if in.DueDate != nil {
		if *in.DueDate == "" {
			next.DueDate = nil // Null or empty clears the due date
		} else {
			due, ok := domain.ParseDueDate(*in.DueDate)
			if !ok {
				return domain.NewValidationError("due_date", "Invalid due_date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)")
			}
			next.DueDate = &due
		}
	}
	*task = next
	return nil
}

func invalidStatus() error {
	return domain.NewValidationError("status", "Invalid status. Must be pending, in_progress, or completed")
}

func invalidPriority() error {
	return domain.NewValidationError("priority", "Invalid priority. Must be low, medium, or high")
}

// asServiceError passes domain errors through and wraps everything else
func asServiceError(err error, message string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternalError(message, err)
}
