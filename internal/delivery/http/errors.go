package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"inventory-service/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP statuses. Everything unrecognized
// is a 500 with a generic body; the underlying error is logged by the
// handler, never leaked to the client.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Product not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Insufficient Stock!"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email already registered"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid credentials"})
	case errors.Is(err, domain.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid or expired token"})
	default:
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}
}
