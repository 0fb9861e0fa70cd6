package service

import (
	"context"
	"testing"

	"task_manager/internal/domain"
	"task_manager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total int64
		expected         float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 8, 12.5},
		{5, 5, 100},
		{1, 32, 3.12},
		{5, 32, 15.62},
		{3, 32, 9.38},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompletionRate(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}

func TestStatisticsEmptyStore(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	stats, err := svc.OverallStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, Statistics{}, *stats)

	byStatus, err := svc.ByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.TaskStatus]int64{
		domain.StatusPending:    0,
		domain.StatusInProgress: 0,
		domain.StatusCompleted:  0,
	}, byStatus)
}

func TestStatistics(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice", domain.RoleUser, "Passw0rd")
	bob := testutil.CreateUser(t, db, "bob", domain.RoleUser, "Passw0rd")
	admin := testutil.CreateUser(t, db, "root", domain.RoleAdmin, "Passw0rd")

	testutil.CreateTask(t, db, domain.Task{Title: "a1", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, OwnerID: alice.ID})
	testutil.CreateTask(t, db, domain.Task{Title: "a2", Status: domain.StatusPending, Priority: domain.PriorityLow, OwnerID: alice.ID})
	testutil.CreateTask(t, db, domain.Task{Title: "a3", Status: domain.StatusInProgress, Priority: domain.PriorityHigh, OwnerID: alice.ID})
	testutil.CreateTask(t, db, domain.Task{Title: "b1", Status: domain.StatusCompleted, Priority: domain.PriorityMedium, OwnerID: bob.ID})
	testutil.CreateTask(t, db, domain.Task{Title: "b2", Status: domain.StatusPending, Priority: domain.PriorityHigh, OwnerID: bob.ID})

	svc := NewStatsService(db)
	ctx := context.Background()

	overall, err := svc.OverallStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), overall.TotalTasks)
	assert.Equal(t, int64(2), overall.CompletedTasks)
	assert.Equal(t, int64(2), overall.PendingTasks)
	assert.Equal(t, int64(1), overall.InProgressTasks)
	assert.Equal(t, 40.0, overall.CompletionRate)
	assert.Nil(t, overall.UserID)

	own, err := svc.UserStatistics(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), own.TotalTasks)
	assert.Equal(t, int64(1), own.CompletedTasks)
	assert.Equal(t, 33.33, own.CompletionRate)
	require.NotNil(t, own.UserID)
	assert.Equal(t, alice.ID, *own.UserID)

	routed, err := svc.ForIdentity(ctx, domain.Identity{UserID: bob.ID, Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(2), routed.TotalTasks)
	assert.Equal(t, 50.0, routed.CompletionRate)

	routed, err = svc.ForIdentity(ctx, domain.Identity{UserID: admin.ID, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(5), routed.TotalTasks)
	assert.Nil(t, routed.UserID)

	byPriority, err := svc.ByPriority(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.TaskPriority]int64{
		domain.PriorityLow:    1,
		domain.PriorityMedium: 1,
		domain.PriorityHigh:   3,
	}, byPriority)

	byStatus, err := svc.ByStatus(ctx)
	require.NoError(t, err)
	var sum int64
	for _, n := range byStatus {
		sum += n
	}
	assert.Equal(t, overall.TotalTasks, sum)
	assert.Equal(t, int64(1), byStatus[domain.StatusInProgress])
}
