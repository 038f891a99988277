package handlers

import (
	"net/http"

	"feastly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// respond writes a success envelope.
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

// respondError maps a service error onto the envelope. APIErrors keep their
// status and details; anything else is a 500.
func respondError(c *gin.Context, err error) {
	if apiErr, ok := utils.AsAPIError(err); ok {
		body := gin.H{"message": apiErr.Message}
		if apiErr.Code != "" {
			body["code"] = apiErr.Code
		}
		if apiErr.Details != nil {
			body["details"] = apiErr.Details
		}
		c.JSON(apiErr.StatusCode, envelope{Success: false, Message: apiErr.Message, Error: body})
		return
	}

	getLogger(c).Error("unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, envelope{
		Success: false,
		Message: "Internal Server Error",
		Error:   gin.H{"message": "an unexpected error occurred"},
	})
}
