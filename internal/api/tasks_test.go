package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	task := s.createTask(t, alice, gin.H{"title": "T1"})
	assert.Equal(t, "T1", task["title"])
	assert.Equal(t, "pending", task["status"])
	assert.Equal(t, "medium", task["priority"])
	assert.Nil(t, task["due_date"])

	code, body := s.do(t, http.MethodGet, "/api/tasks", alice, nil)
	require.Equal(t, http.StatusOK, code)
	tasks := body["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "T1", tasks[0].(map[string]any)["title"])
	assert.Equal(t, map[string]any{"page": 1.0, "pages": 1.0, "per_page": 10.0, "total": 1.0}, body["pagination"])

	code, body = s.do(t, http.MethodGet, taskPath(task), bob, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Access denied", body["message"])

	code, body = s.do(t, http.MethodPut, taskPath(task), alice, gin.H{
		"status":   "completed",
		"due_date": "2030-01-02T03:04:05Z",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Task updated successfully", body["message"])
	updated := body["task"].(map[string]any)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "T1", updated["title"])
	assert.NotNil(t, updated["due_date"])

	code, body = s.do(t, http.MethodPut, taskPath(task), alice, `{"due_date": null}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["task"].(map[string]any)["due_date"])

	code, _ = s.do(t, http.MethodDelete, taskPath(task), bob, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = s.do(t, http.MethodDelete, taskPath(task), alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Task deleted successfully", body["message"])

	code, body = s.do(t, http.MethodGet, taskPath(task), alice, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", body["message"])
}

func TestCreateTaskHandlerValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")

	tests := []struct {
		name    string
		body    any
		message string
		field   any
	}{
		{"missing title", gin.H{"description": "d"}, "title is required", "title"},
		{"blank title", gin.H{"title": "   "}, "title is required", "title"},
		{"bad status", gin.H{"title": "x", "status": "done"}, "Invalid status. Must be pending, in_progress, or completed", "status"},
		{"bad priority", gin.H{"title": "x", "priority": "urgent"}, "Invalid priority. Must be low, medium, or high", "priority"},
		{"bad due date", gin.H{"title": "x", "due_date": "tomorrow"}, "Invalid due_date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)", "due_date"},
		{"no body", "", "No data provided", nil},
		{"wrong field type", `{"title": 5}`, "Invalid request body", nil},
		{"malformed json", `{"title": "x"`, "Invalid request body", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := s.do(t, http.MethodPost, "/api/tasks", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, tt.field, body["field"])
		})
	}

	code, body := s.do(t, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["tasks"])
}

func TestListTasksHandlerQuery(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")
	s.createTask(t, token, gin.H{"title": "Buy milk", "priority": "high"})
	s.createTask(t, token, gin.H{"title": "Write report", "status": "in_progress"})
	s.createTask(t, token, gin.H{"title": "Call mom", "description": "about the MILK"})

	code, body := s.do(t, http.MethodGet, "/api/tasks?search=milk", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["tasks"], 2)

	code, body = s.do(t, http.MethodGet, "/api/tasks?priority=high", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["tasks"], 1)

	code, body = s.do(t, http.MethodGet, "/api/tasks?per_page=2&page=2", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["tasks"], 1)
	assert.Equal(t, map[string]any{"page": 2.0, "pages": 2.0, "per_page": 2.0, "total": 3.0}, body["pagination"])

	code, body = s.do(t, http.MethodGet, "/api/tasks?status=done", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "status", body["field"])
}

func TestTaskHandlersMalformedID(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		code, body := s.do(t, method, "/api/tasks/abc", token, gin.H{"title": "x"})
		assert.Equal(t, http.StatusNotFound, code, method)
		assert.Equal(t, "Task not found", body["message"], method)
	}
}

func TestAdminSeesAllTasks(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	root := s.admin(t)

	task := s.createTask(t, alice, gin.H{"title": "A"})
	s.createTask(t, bob, gin.H{"title": "B"})

	code, body := s.do(t, http.MethodGet, "/api/tasks", root, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["tasks"], 2)

	code, body = s.do(t, http.MethodPut, taskPath(task), root, gin.H{"priority": "low"})
	require.Equal(t, http.StatusOK, code)
	updated := body["task"].(map[string]any)
	assert.Equal(t, "low", updated["priority"])
	assert.Equal(t, task["user_id"], updated["user_id"])
}

func TestUpdateTaskHandlerChecksAccessBeforeBody(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")
	task := s.createTask(t, alice, gin.H{"title": "T1"})

	code, body := s.do(t, http.MethodPut, taskPath(task), bob, `{"status": 5}`)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Access denied", body["message"])

	code, body = s.do(t, http.MethodPut, "/api/tasks/9999", alice, `{"status": 5}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", body["message"])

	code, body = s.do(t, http.MethodPut, taskPath(task), alice, `{"status": 5}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", body["message"])

	code, body = s.do(t, http.MethodPut, taskPath(task), alice, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No data provided", body["message"])
}
