package middleware

import (
	"net/http"

	"weekly-lottery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminAudit writes an audit line for every successful administrative write.
func AdminAudit(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action := adminAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		log.Info().
			Str("audit", action).
			Str("subject", c.GetString(CtxSubject)).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Msg("admin action")
	}
}

func adminAction(path, method string) string {
	switch {
	case path == "/api/v1/admin/draw" && method == http.MethodPost:
		return "draw_now"
	case path == "/api/v1/admin/schedule" && method == http.MethodPut:
		return "set_schedule"
	case path == "/api/v1/admin/reload" && method == http.MethodPost:
		return "reload_scheduler"
	case path == "/api/v1/admin/broadcast" && method == http.MethodPost:
		return "broadcast_status"
	}
	return ""
}
