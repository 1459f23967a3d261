package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID reuses the caller's X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

type accessLog struct {
	Time      string  `json:"time"`
	RequestID string  `json:"requestId,omitempty"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
	Status    int     `json:"status"`
	LatencyMs float64 `json:"latencyMs"`
	ClientIP  string  `json:"clientIp"`
	Error     string  `json:"error,omitempty"`
}

// Logger writes access logs as JSON lines when format is "json" and in
// gin's default text layout otherwise.
func Logger(format string) gin.HandlerFunc {
	if format != "json" {
		return gin.Logger()
	}
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		id, _ := p.Keys[requestIDKey].(string)
		line, err := json.Marshal(accessLog{
			Time:      p.TimeStamp.Format(time.RFC3339),
			RequestID: id,
			Method:    p.Method,
			Path:      p.Path,
			Status:    p.StatusCode,
			LatencyMs: float64(p.Latency.Microseconds()) / 1000,
			ClientIP:  p.ClientIP,
			Error:     p.ErrorMessage,
		})
		if err != nil {
			return ""
		}
		return string(line) + "\n"
	})
}

// CORS allows the configured origins; "*" allows any origin.
func CORS(origins []string, credentials bool) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	config.AllowCredentials = credentials

	for _, o := range origins {
		if o == "*" {
			config.AllowAllOrigins = true
			return cors.New(config)
		}
	}
	config.AllowOrigins = origins
	return cors.New(config)
}
