package store

import (
	"task_manager/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// StatsStore runs aggregate queries over tasks
type StatsStore struct {
	db *gorm.DB
}

// NewStatsStore returns a stats store bound to db
func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

type groupCount struct {
	Key   string
	Count int64
}

// CountByStatus groups tasks by status; ownerID nil means every task
func (s *StatsStore) CountByStatus(ownerID *uint) (map[string]int64, error) {
	return s.countBy("status", ownerID)
}

// CountByPriority groups every task by priority
func (s *StatsStore) CountByPriority() (map[string]int64, error) {
	return s.countBy("priority", nil)
}

func (s *StatsStore) countBy(column string, ownerID *uint) (map[string]int64, error) {
	query := s.db.Model(&domain.Task{}).Select(column + " AS `key`, COUNT(*) AS `count`")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID) // Scope to one owner
	}
	var rows []groupCount
	if err := query.Group(column).Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
