package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/metrics"
)

const (
	RequestIDHeader     = "X-Request-ID"
	ContextKeyRequestID = "request_id"
)

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// MetricsMiddleware records count and latency of every request by route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// NewCORSConfig builds the cross-origin policy. Unless AllowAll is set only the
// configured origins are allowed, falling back to config.DefaultAllowedOrigin.
func NewCORSConfig(cfg config.CORS) (cors.Config, error) {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	switch {
	case cfg.AllowAll:
		corsCfg.AllowAllOrigins = true
	case len(cfg.AllowedOrigins) > 0:
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	default:
		corsCfg.AllowOrigins = []string{config.DefaultAllowedOrigin}
	}

	if err := corsCfg.Validate(); err != nil {
		return cors.Config{}, err
	}
	return corsCfg, nil
}
