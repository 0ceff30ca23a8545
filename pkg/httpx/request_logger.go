package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_l2/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — access-лог после обработки запроса.
// request_id и trace/span добавляет сам логгер из контекста,
// поэтому здесь только факты о запросе. 5xx уходят уровнем error.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		// служебные маршруты не логируем
		if path == "/metrics" || path == "/ping" {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		logf := log.Infof
		if status >= http.StatusInternalServerError {
			logf = log.Errorf
		}

		logf(c.Request.Context(), "http request method=%s path=%s status=%d ip=%s took=%s size=%d",
			c.Request.Method, path, status, c.ClientIP(), time.Since(start), c.Writer.Size())
	}
}
