package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"inventory-service/internal/infrastructure"
)

const userIDContextKey = "userID"

// AuthMiddleware validates the bearer token signature and expiry on every
// protected route and stores the authenticated user id on the request
// context.
func AuthMiddleware(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Missing Authorization header"})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid Authorization header format"})
			}

			userID, _, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid or expired token"})
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// RateLimitMiddleware throttles per client IP. Applied to the auth routes
// only.
func RateLimitMiddleware(limiter *infrastructure.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Too many requests"})
			}
			return next(c)
		}
	}
}

// TimeoutMiddleware bounds every request so a hung storage call cannot hang
// the request forever.
func TimeoutMiddleware(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.WithFields(logrus.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"status":  c.Response().Status,
				"elapsed": time.Since(start).String(),
			}).Info("request")

			return err
		}
	}
}
