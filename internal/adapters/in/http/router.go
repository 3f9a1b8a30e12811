package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance serving the API, /health and /metrics.
// Everything under /api/v1 requires an actor identity.
func NewRouter(s *Server, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", ActorFromHeaders())

	orders := api.Group("/purchase-orders")
	orders.POST("", s.CreatePurchaseOrder)
	orders.GET("", s.ListPurchaseOrders)
	orders.GET("/:id", s.GetPurchaseOrder)
	orders.DELETE("/:id", s.CancelPurchaseOrder)
	orders.PUT("/:id/items", s.ReplacePurchaseOrderItems)
	orders.POST("/:id/acknowledge", s.AcknowledgePurchaseOrder)
	orders.POST("/:id/deliver", s.DeliverPurchaseOrder)
	orders.POST("/:id/rate", s.RatePurchaseOrder)

	vendors := api.Group("/vendors")
	vendors.GET("/:id/performance", s.GetVendorPerformance)
	vendors.GET("/:id/performance/history", s.GetVendorPerformanceHistory)

	return e
}
