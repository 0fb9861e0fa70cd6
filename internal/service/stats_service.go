package service

import (
	"context" // Request scoped context
	"math"    // Rounding

	"task_manager/internal/domain" // Importing domain models
	"task_manager/internal/store"  // Persistence

	"gorm.io/gorm" // GORM ORM library
)

// Statistics summarizes task completion
type Statistics struct {
	UserID          *uint   `json:"user_id,omitempty"` // Set for per-user statistics
	TotalTasks      int64   `json:"total_tasks"`       // Total tasks
	CompletedTasks  int64   `json:"completed_tasks"`   // Tasks in completed state
	PendingTasks    int64   `json:"pending_tasks"`     // Tasks in pending state
	InProgressTasks int64   `json:"in_progress_tasks"` // Tasks in in_progress state
	CompletionRate  float64 `json:"completion_rate"`   // completed / total * 100, two decimals
}

// StatsService is the statistics engine
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a StatsService over db
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// ForIdentity picks overall statistics for admins and own statistics otherwise
func (s *StatsService) ForIdentity(ctx context.Context, identity domain.Identity) (*Statistics, error) {
	switch identity.Role {
	case domain.RoleAdmin:
		return s.OverallStatistics(ctx)
	default:
		return s.UserStatistics(ctx, identity.UserID)
	}
}

// OverallStatistics aggregates every task
func (s *StatsService) OverallStatistics(ctx context.Context) (*Statistics, error) {
	counts, err := store.NewStatsStore(s.db.WithContext(ctx)).CountByStatus(nil)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve statistics", err)
	}
	stats := summarize(counts)
	return &stats, nil
}

// UserStatistics aggregates the tasks owned by userID
func (s *StatsService) UserStatistics(ctx context.Context, userID uint) (*Statistics, error) {
	counts, err := store.NewStatsStore(s.db.WithContext(ctx)).CountByStatus(&userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve statistics", err)
	}
	stats := summarize(counts)
	stats.UserID = &userID
	return &stats, nil
}

// ByPriority counts every task per priority; all priorities are present
func (s *StatsService) ByPriority(ctx context.Context) (map[domain.TaskPriority]int64, error) {
	counts, err := store.NewStatsStore(s.db.WithContext(ctx)).CountByPriority()
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve priority statistics", err)
	}
	out := make(map[domain.TaskPriority]int64, len(domain.TaskPriorities))
	for _, p := range domain.TaskPriorities {
		out[p] = counts[string(p)]
	}
	return out, nil
}

// ByStatus counts every task per status; all statuses are present
func (s *StatsService) ByStatus(ctx context.Context) (map[domain.TaskStatus]int64, error) {
	counts, err := store.NewStatsStore(s.db.WithContext(ctx)).CountByStatus(nil)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve status statistics", err)
	}
	out := make(map[domain.TaskStatus]int64, len(domain.TaskStatuses))
	for _, st := range domain.TaskStatuses {
		out[st] = counts[string(st)]
	}
	return out, nil
}

func summarize(counts map[string]int64) Statistics {
	var total int64
	for _, n := range counts {
		total += n
	}
	completed := counts[string(domain.StatusCompleted)]
	return Statistics{
		TotalTasks:      total,
		CompletedTasks:  completed,
		PendingTasks:    counts[string(domain.StatusPending)],
		InProgressTasks: counts[string(domain.StatusInProgress)],
		CompletionRate:  CompletionRate(completed, total),
	}
}

// CompletionRate returns completed/total*100 rounded half to even at two decimals, 0 for no tasks
func CompletionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.RoundToEven(float64(completed)/float64(total)*100*100) / 100
}
