package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"task_manager/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// statusFor maps an error kind to its HTTP status code
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON body with the matching status code
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.NewInternalError("Internal server error", err)
	}
	status := statusFor(de.Kind)
	body := gin.H{"message": de.Message} // Human readable message
	if de.Field != "" {
		body["field"] = de.Field // Offending field
	}
	if status == http.StatusInternalServerError {
		cause := "unknown error"
		if de.Err != nil {
			cause = de.Err.Error()
		}
		body["error"] = cause // Underlying cause
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method, // HTTP method
			"path":   c.FullPath(),     // Route
			"error":  cause,            // Error message
		}).Error(de.Message)
	}
	c.JSON(status, body)
}
