package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRouting(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	root := s.admin(t)

	s.createTask(t, alice, gin.H{"title": "a1", "status": "completed"})
	s.createTask(t, alice, gin.H{"title": "a2"})
	s.createTask(t, alice, gin.H{"title": "a3", "status": "in_progress"})
	s.createTask(t, bob, gin.H{"title": "b1", "status": "completed"})

	code, body := s.do(t, http.MethodGet, "/api/analytics/statistics", alice, nil)
	require.Equal(t, http.StatusOK, code)
	stats := body["statistics"].(map[string]any)
	assert.Equal(t, 3.0, stats["total_tasks"])
	assert.Equal(t, 1.0, stats["completed_tasks"])
	assert.Equal(t, 1.0, stats["pending_tasks"])
	assert.Equal(t, 1.0, stats["in_progress_tasks"])
	assert.Equal(t, 33.33, stats["completion_rate"])
	assert.Contains(t, stats, "user_id")

	code, body = s.do(t, http.MethodGet, "/api/analytics/statistics", root, nil)
	require.Equal(t, http.StatusOK, code)
	stats = body["statistics"].(map[string]any)
	assert.Equal(t, 4.0, stats["total_tasks"])
	assert.Equal(t, 50.0, stats["completion_rate"])
	assert.NotContains(t, stats, "user_id")
}

func TestBreakdownHandlers(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")
	s.createTask(t, token, gin.H{"title": "a", "priority": "high"})
	s.createTask(t, token, gin.H{"title": "b", "priority": "high", "status": "completed"})

	code, body := s.do(t, http.MethodGet, "/api/analytics/priority", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"low": 0.0, "medium": 0.0, "high": 2.0}, body["priority_stats"])

	code, body = s.do(t, http.MethodGet, "/api/analytics/status", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"pending": 1.0, "in_progress": 0.0, "completed": 1.0}, body["status_stats"])
}
