package store

import (
	"strings" // String manipulation

	"task_manager/internal/domain" // Importing domain models
	"task_manager/internal/policy" // Listing scope

	"gorm.io/gorm" // GORM ORM library
)

// TaskFilter narrows a task listing; nil fields are not applied
type TaskFilter struct {
	Status   *domain.TaskStatus   // Equality filter on status
	Priority *domain.TaskPriority // Equality filter on priority
	Search   string               // Substring of title or description
}

// TaskStore is the task store
type TaskStore struct {
	db *gorm.DB
}

// NewTaskStore returns a store bound to db, which may be a transaction
func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create inserts a new task
func (s *TaskStore) Create(task *domain.Task) error {
	return translate(s.db.Create(task).Error)
}

// Save writes every column of an existing task
func (s *TaskStore) Save(task *domain.Task) error {
	return translate(s.db.Save(task).Error)
}

// Delete permanently removes a task
func (s *TaskStore) Delete(task *domain.Task) error {
	return translate(s.db.Delete(task).Error)
}

// FindByID loads a task by primary key
func (s *TaskStore) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// List applies scope, filter and the page window, newest first
func (s *TaskStore) List(scope policy.Scope, filter TaskFilter, offset, limit int) ([]domain.Task, int64, error) {
	query := s.filtered(scope, filter) // Start building the query
	var total int64                    // Total matching tasks
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tasks []domain.Task // Slice to hold the page
	if err := s.filtered(scope, filter).
		Order("created_at desc").
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (s *TaskStore) filtered(scope policy.Scope, filter TaskFilter) *gorm.DB {
	query := s.db.Model(&domain.Task{})
	if !scope.All {
		query = query.Where("user_id = ?", scope.OwnerID) // Ownership narrowing comes first
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%" // Both sides lowercased by the database
		query = query.Where("(LOWER(title) LIKE LOWER(?) ESCAPE '!' OR LOWER(description) LIKE LOWER(?) ESCAPE '!')", pattern, pattern)
	}
	return query
}

// escapeLike makes LIKE wildcards in user input match literally
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
