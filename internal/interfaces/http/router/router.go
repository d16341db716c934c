package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ginserver "farm_hub/internal/infrastructure/http/gin"
	"farm_hub/internal/interfaces/http/handler"
)

type Handlers struct {
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	// Metrics is optional; /metrics is only mounted when set.
	Metrics http.Handler
}

// RegisterRoutes mounts the API at the root and again under /api, which is
// where the storefront calls it.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	allowed := make(map[string]string)
	for _, prefix := range []string{"", "/api"} {
		allowed[prefix+"/products"] = http.MethodGet
		allowed[prefix+"/orders"] = http.MethodPost

		g := r.Group(prefix)

		g.Any("/products",
			ginserver.CORS(http.MethodGet),
			ginserver.AllowMethods(http.MethodGet),
			h.Products.ListProducts,
		)
		g.Any("/orders",
			ginserver.CORS(http.MethodPost),
			ginserver.AllowMethods(http.MethodPost),
			h.Orders.CreateOrder,
		)
	}

	// Any covers the standard verbs only; other verbs end up here.
	r.NoRoute(methodFallback(allowed))

	r.GET("/healthz", handler.Health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}
}

// methodFallback answers 405 with CORS headers for API paths hit with a
// non-standard verb. Other paths get gin's default 404.
func methodFallback(allowed map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		method, ok := allowed[c.Request.URL.Path]
		if !ok {
			return
		}
		ginserver.CORS(method)(c)
		if !c.IsAborted() {
			ginserver.AllowMethods(method)(c)
		}
	}
}
