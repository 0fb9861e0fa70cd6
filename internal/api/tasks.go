package api

import (
	"encoding/json" // JSON decoding of optional fields
	"errors"        // Error inspection
	"io"            // Empty body detection
	"net/http"      // HTTP status codes
	"strconv"       // String conversion

	"task_manager/internal/domain"     // Importing domain models
	"task_manager/internal/middleware" // Caller identity
	"task_manager/internal/service"    // Business operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// optionalString records whether a JSON field was present and whether it was null
type optionalString struct {
	Set   bool    // Field appeared in the body
	Value *string // nil when the field was null
}

// UnmarshalJSON is only called for fields present in the body
func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// ptr returns nil when absent and a pointer to "" for null
func (o optionalString) ptr() *string {
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		empty := ""
		return &empty
	}
	return o.Value
}

// TaskRequest is the body of task create and update requests
type TaskRequest struct {
	Title       optionalString `json:"title"`       // Required on create
	Description optionalString `json:"description"` // Optional description
	Status      optionalString `json:"status"`      // pending, in_progress, completed
	Priority    optionalString `json:"priority"`    // low, medium, high
	DueDate     optionalString `json:"due_date"`    // ISO-8601 timestamp, null clears
}

func (r TaskRequest) input() service.TaskInput {
	return service.TaskInput{
		Title:       r.Title.ptr(),
		Description: r.Description.ptr(),
		Status:      r.Status.ptr(),
		Priority:    r.Priority.ptr(),
		DueDate:     r.DueDate.ptr(),
	}
}

// ListTasksHandler returns the caller's visible tasks, filtered and paginated
func ListTasksHandler(tasks *service.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		page := service.NewPagination(queryInt(c, "page", 1), queryInt(c, "per_page", service.DefaultPerPage))
		query := service.TaskQuery{
			Status:   c.Query("status"),   // Optional status filter
			Priority: c.Query("priority"), // Optional priority filter
			Search:   c.Query("search"),   // Optional substring search
		}
		result, err := tasks.ListTasks(c.Request.Context(), identity, query, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": result.Tasks, "pagination": result.Pagination})
	}
}

// GetTaskHandler returns one task
func GetTaskHandler(tasks *service.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		task, err := tasks.GetTask(c.Request.Context(), identity, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"task": task})
	}
}

// CreateTaskHandler creates a task owned by the caller
func CreateTaskHandler(tasks *service.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TaskRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, taskBodyError(err))
			return
		}
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		task, err := tasks.CreateTask(c.Request.Context(), identity, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		recordTaskMutation("create")
		// Log task creation
		logrus.WithFields(logrus.Fields{
			"user_id": identity.UserID, // Owner ID
			"task_id": task.ID,         // Task ID
		}).Info("Task created")
		c.JSON(http.StatusCreated, gin.H{"message": "Task created successfully", "task": task})
	}
}

// UpdateTaskHandler applies a partial update to a task
func UpdateTaskHandler(tasks *service.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		// Missing and forbidden tasks are reported before the body is looked at
		if _, err := tasks.GetTask(c.Request.Context(), identity, id); err != nil {
			respondError(c, err)
			return
		}
		var req TaskRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, taskBodyError(err))
			return
		}
		task, err := tasks.UpdateTask(c.Request.Context(), identity, id, req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		recordTaskMutation("update")
		logrus.WithFields(logrus.Fields{
			"user_id": identity.UserID, // Caller ID
			"task_id": task.ID,         // Task ID
		}).Info("Task updated")
		c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully", "task": task})
	}
}

// DeleteTaskHandler permanently deletes a task
func DeleteTaskHandler(tasks *service.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			return
		}
		identity, _ := middleware.IdentityFrom(c) // Caller identity
		if err := tasks.DeleteTask(c.Request.Context(), identity, id); err != nil {
			respondError(c, err)
			return
		}
		recordTaskMutation("delete")
		logrus.WithFields(logrus.Fields{
			"user_id": identity.UserID, // Caller ID
			"task_id": id,              // Task ID
		}).Info("Task deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
	}
}

// taskBodyError tells an empty body apart from one that does not decode
func taskBodyError(err error) error {
	if errors.Is(err, io.EOF) {
		return domain.NewValidationError("", "No data provided")
	}
	return domain.NewValidationError("", "Invalid request body")
}

// taskID parses the :id path parameter; a malformed id is reported as not found
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, domain.NewNotFoundError("Task not found"))
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an integer query parameter, falling back on absence or garbage
func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
