package handlers

import (
	"net/http"

	"feastly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest monitor snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
