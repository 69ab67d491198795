package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"inventory-service/internal/infrastructure"
)

// RegisterRoutes wires the canonical API surface. Everything under /api
// except /api/auth requires a valid bearer token.
func RegisterRoutes(
	e *echo.Echo,
	h *Handler,
	jwtService *infrastructure.JWTService,
	limiter *infrastructure.RateLimiter,
	logger *logrus.Logger,
	requestTimeout time.Duration,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(RequestLogger(logger))
	e.Use(TimeoutMiddleware(requestTimeout))

	e.GET("/healthz", h.Health)

	auth := e.Group("/api/auth", RateLimitMiddleware(limiter))
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	api := e.Group("/api", AuthMiddleware(jwtService))
	api.GET("/products", h.ListProducts)
	api.POST("/add", h.AddProduct)
	api.PUT("/update/:id", h.UpdateProduct)
	api.DELETE("/delete/:id", h.DeleteProduct)
	api.POST("/sell", h.SellProduct)
	api.GET("/sales", h.ListSales)
	// kept alongside /sales: older frontend builds call this path
	api.GET("/sales-summary", h.ListSales)
}
