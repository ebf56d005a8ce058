package respond

import (
	"github.com/gin-gonic/gin"

	"clinic-intake-backend/internal/shared/telemetry"
)

// Error sends the flat error envelope {"error": message} plus any extra
// diagnostic fields (required, allowed, received) and logs it.
func Error(c *gin.Context, status int, message string, extras gin.H) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	telemetry.Error("http.error", fields)

	body := gin.H{"error": message}
	for k, v := range extras {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}
