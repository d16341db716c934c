package gin

import (
	"net/http"
	"strings"
	"time"

	ginlib "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farm_hub/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags the request context with a request id (reusing an
// inbound X-Request-ID) and logs one line per request.
func RequestLogger(log logger.Logger) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))

		start := time.Now()
		c.Next()

		log.WithContext(c.Request.Context()).Info("http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
	}
}

// CORS sets permissive cross-origin headers and answers preflight
// requests with 204 and no body.
func CORS(methods ...string) ginlib.HandlerFunc {
	allowed := strings.Join(append(append([]string{}, methods...), http.MethodOptions), ", ")

	return func(c *ginlib.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Allow-Methods", allowed)
		h.Set("Content-Type", "application/json")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AllowMethods rejects every other method with 405.
func AllowMethods(methods ...string) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		for _, m := range methods {
			if c.Request.Method == m {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ginlib.H{"error": "Method not allowed"})
	}
}

// RequestObserver is satisfied by metrics.Registry.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

func Metrics(obs RequestObserver) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
