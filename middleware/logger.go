package middleware

import (
	"io"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

type accessLogEntry struct {
	Timestamp string  `json:"ts"`
	Level     string  `json:"level"`
	RequestId string  `json:"requestId,omitempty"`
	ClientIP  string  `json:"ip"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
	Status    int     `json:"status"`
	LatencyMs float64 `json:"latencyMs"`
	UserAgent string  `json:"ua"`
	BodySize  int     `json:"size"`
	Error     string  `json:"error,omitempty"`
}

// LoggerMiddleware writes one JSON line per request to out.
func LoggerMiddleware(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: out,
		Formatter: func(param gin.LogFormatterParams) string {
			entry := accessLogEntry{
				Timestamp: param.TimeStamp.UTC().Format(time.RFC3339Nano),
				Level:     "info",
				ClientIP:  param.ClientIP,
				Method:    param.Method,
				Path:      param.Path,
				Status:    param.StatusCode,
				LatencyMs: float64(param.Latency) / float64(time.Millisecond),
				UserAgent: param.Request.UserAgent(),
				BodySize:  param.BodySize,
				Error:     param.ErrorMessage,
			}
			if requestId, ok := param.Keys[RequestIdKey].(string); ok {
				entry.RequestId = requestId
			}
			if param.StatusCode >= 500 {
				entry.Level = "error"
			}

			b, _ := json.Marshal(entry)
			return string(b) + "\n"
		},
	})
}
