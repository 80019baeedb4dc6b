package logging

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// init configures single-line JSON output on stdout with UTC timestamps.
func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
}

// Logger exposes the shared logrus instance for packages that want fields
// beyond the helpers below.
func Logger() *logrus.Logger { return log }

// Info logs a structured info line with arbitrary fields.
func Info(msg string, fields map[string]interface{}) {
	log.WithFields(fields).Info(msg)
}

// Warn logs a structured warning line with arbitrary fields.
func Warn(msg string, fields map[string]interface{}) {
	log.WithFields(fields).Warn(msg)
}

// Error logs a structured error line with arbitrary fields.
func Error(msg string, fields map[string]interface{}) {
	log.WithFields(fields).Error(msg)
}

// RequestIDKey is the gin context key under which JSONLogger stores the
// per-request id.
const RequestIDKey = "request_id"

// JSONLogger returns a Gin middleware that logs requests as single-line JSON
// and tags each request with a generated id.
func JSONLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		reqID := uuid.NewString()
		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set("X-Request-Id", reqID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"status":     status,
			"latency_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":  c.ClientIP(),
			"bytes_out":  c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}

		if status >= http.StatusInternalServerError || len(c.Errors) > 0 {
			entry.Error("request")
		} else {
			entry.Info("request")
		}
	}
}
