package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is the domain error taxonomy surfaced to the HTTP boundary.
// Services raise these and propagate them unmodified; handlers map them onto
// the response envelope.
type APIError struct {
	StatusCode int         `json:"statusCode"`
	Code       string      `json:"code,omitempty"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// WithCode attaches a machine-readable code (e.g. SLOT_UNAVAILABLE).
func (e *APIError) WithCode(code string) *APIError {
	e.Code = code
	return e
}

// WithDetails attaches machine-readable details (e.g. a conflicting block list).
func (e *APIError) WithDetails(details interface{}) *APIError {
	e.Details = details
	return e
}

// NewNotFound reports a missing referenced entity.
func NewNotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: message}
}

// NewInvalidRequest reports a domain validation failure.
func NewInvalidRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewForbidden reports an ownership/authorization violation.
func NewForbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Message: message}
}

// NewConflict reports a state conflict (overlapping block, duplicate review).
func NewConflict(message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Message: message}
}

// AsAPIError unwraps err into an APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal Server Error",
					"error":   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
