package client_test

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/common"
	"inventory-service/internal/application/services"
	delivery "inventory-service/internal/delivery/http"
	"inventory-service/internal/infrastructure"
	"inventory-service/internal/infrastructure/db/postgres"
	"inventory-service/internal/infrastructure/messaging"
	"inventory-service/pkg/client"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := postgres.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = postgres.Close(db) })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	publisher := messaging.NewNopPublisher()
	productRepo := postgres.NewProductRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	userRepo := postgres.NewUserRepository(db)

	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)
	limiter := infrastructure.NewRateLimiter(1000, 1000)

	handler := delivery.NewHandler(
		services.NewInventoryService(productRepo, publisher),
		services.NewSalesService(productRepo, saleRepo, publisher),
		services.NewAuthService(userRepo, jwtService),
		logger,
	)

	e := echo.New()
	delivery.RegisterRoutes(e, handler, jwtService, limiter, logger, 5*time.Second)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func TestClientFullFlow(t *testing.T) {
	server := newTestAPI(t)
	c := client.New(client.Config{BaseURL: server.URL})
	ctx := context.Background()

	require.NoError(t, c.Signup(ctx, "Vicky", "vicky@example.com", "secret123"))

	login, err := c.Login(ctx, "vicky@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	created, err := c.AddProduct(ctx, &command.CreateProductCommand{
		Name:          "Pen",
		Price:         10,
		StockQuantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pen", created.Name)

	sellResult, err := c.Sell(ctx, created.Id.String(), 3)
	require.NoError(t, err)
	assert.Equal(t, 30.0, sellResult.TotalAmount)

	products, err := c.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].StockQuantity)

	sales, err := c.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)

	newPrice := 9.0
	updated, err := c.UpdateProduct(ctx, created.Id.String(), &command.UpdateProductCommand{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated.Price)

	require.NoError(t, c.DeleteProduct(ctx, created.Id.String()))
	products, err = c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	server := newTestAPI(t)
	c := client.New(client.Config{BaseURL: server.URL})
	ctx := context.Background()

	// unauthenticated request
	_, err := c.ListProducts(ctx)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)

	_, err = c.Login(ctx, "nobody@example.com", "nope")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestComputeStats(t *testing.T) {
	products := []*common.ProductResult{
		{Name: "Pen", Price: 10, StockQuantity: 2},
		{Name: "Notebook", Price: 25, StockQuantity: 8},
	}
	sales := []*common.SaleResult{
		{TotalAmount: 30},
		{TotalAmount: 25},
	}

	stats := client.ComputeStats(products, sales, 5)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 10, stats.TotalStockUnits)
	assert.Equal(t, 220.0, stats.TotalStockValue)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 55.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalSales)
}
