package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/interfaces"
	"inventory-service/internal/domain"
)

type Handler struct {
	inventoryService interfaces.InventoryService
	salesService     interfaces.SalesService
	authService      interfaces.AuthService
	logger           *logrus.Logger
}

func NewHandler(
	inventoryService interfaces.InventoryService,
	salesService interfaces.SalesService,
	authService interfaces.AuthService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		inventoryService: inventoryService,
		salesService:     salesService,
		authService:      authService,
		logger:           logger,
	}
}

func (h *Handler) ListProducts(c echo.Context) error {
	result, err := h.inventoryService.ListProducts(c.Request().Context())
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) AddProduct(c echo.Context) error {
	var createCommand command.CreateProductCommand
	if err := c.Bind(&createCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.inventoryService.CreateProduct(c.Request().Context(), &createCommand)
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, domain.ErrProductNotFound)
	}

	var updateCommand command.UpdateProductCommand
	if err := c.Bind(&updateCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}
	updateCommand.Id = id

	result, err := h.inventoryService.UpdateProduct(c.Request().Context(), &updateCommand)
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	// Idempotent: an unknown or malformed id still reports success, so a
	// retried delete cannot fail.
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		if err := h.inventoryService.DeleteProduct(c.Request().Context(), id); err != nil {
			h.logError(c, err)
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Product Deleted!"})
}

type sellRequest struct {
	ProductId    string `json:"productId"`
	QuantitySold int    `json:"quantitySold"`
}

type sellResponse struct {
	Message     string  `json:"message"`
	TotalAmount float64 `json:"totalAmount"`
}

func (h *Handler) SellProduct(c echo.Context) error {
	var req sellRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	productId, err := uuid.Parse(req.ProductId)
	if err != nil {
		return respondError(c, domain.ErrProductNotFound)
	}

	result, err := h.salesService.SellProduct(c.Request().Context(), &command.SellProductCommand{
		ProductId:    productId,
		QuantitySold: req.QuantitySold,
	})
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, sellResponse{
		Message:     "Sale Successful!",
		TotalAmount: result.TotalAmount,
	})
}

func (h *Handler) ListSales(c echo.Context) error {
	result, err := h.salesService.ListSales(c.Request().Context())
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) Signup(c echo.Context) error {
	var signupCommand command.SignupUserCommand
	if err := c.Bind(&signupCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.authService.Signup(c.Request().Context(), &signupCommand)
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		h.logError(c, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "ok"})
}

func (h *Handler) logError(c echo.Context, err error) {
	h.logger.WithFields(logrus.Fields{
		"method": c.Request().Method,
		"path":   c.Request().URL.Path,
	}).WithError(err).Error("request failed")
}
