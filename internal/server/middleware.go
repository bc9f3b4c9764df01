package server

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Meertayyab/portfolio/internal/analytics"
	"github.com/Meertayyab/portfolio/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// requestLogger tags every request with an ID, then logs and times it.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(requestIDHeader, id)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, route, strconv.Itoa(status), latency)

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		log.Error("panic recovered",
			zap.String("request_id", c.GetString(ctxRequestID)),
			zap.Any("error", err))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

// trackVisits records successful page and fragment views. Requests sending
// "DNT: 1" are never recorded.
func (s *Server) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.analytics == nil || c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}
		section := c.GetString(ctxSection)
		if section == "" {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		err := s.analytics.Record(c.Request.Context(), c.ClientIP(), analytics.Visit{
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Section:   section,
			Theme:     c.GetString(ctxTheme),
		})
		if err != nil {
			s.log.Warn("error recording visit", zap.Error(err))
		}
	}
}
