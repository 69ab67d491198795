package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"inventory-service/internal/application/common"
	"inventory-service/internal/application/services"
	delivery "inventory-service/internal/delivery/http"
	"inventory-service/internal/infrastructure"
	"inventory-service/internal/infrastructure/db/postgres"
	"inventory-service/internal/infrastructure/messaging"
)

func newTestServer(t *testing.T) *echo.Echo {
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
	return e
}

func doRequest(e *echo.Echo, method, path, token string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doRequest(e, nethttp.MethodPost, "/api/auth/signup", "",
		`{"name":"Vicky","email":"vicky@example.com","password":"secret123"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"vicky@example.com","password":"secret123"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{nethttp.MethodGet, "/api/products"},
		{nethttp.MethodPost, "/api/add"},
		{nethttp.MethodPut, "/api/update/xyz"},
		{nethttp.MethodDelete, "/api/delete/xyz"},
		{nethttp.MethodPost, "/api/sell"},
		{nethttp.MethodGet, "/api/sales"},
	} {
		rec := doRequest(e, tc.method, tc.path, "", "")
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}

	rec := doRequest(e, nethttp.MethodGet, "/api/products", "garbage-token", "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestProductLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := loginToken(t, e)

	rec := doRequest(e, nethttp.MethodPost, "/api/add", token,
		`{"name":"Pen","category":"Stationery","price":10,"stock_quantity":5}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var created common.ProductResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Pen", created.Name)
	assert.Equal(t, 10.0, created.Price)
	assert.Equal(t, 5, created.StockQuantity)

	rec = doRequest(e, nethttp.MethodPost, "/api/add", token, `{"price":10}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = doRequest(e, nethttp.MethodPut, "/api/update/"+created.Id.String(), token, `{"price":12.5}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var updated common.ProductResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "Pen", updated.Name)

	rec = doRequest(e, nethttp.MethodPut, "/api/update/"+created.Id.String(), token, `{"name":""}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = doRequest(e, nethttp.MethodGet, "/api/products", token, "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var products []common.ProductResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)

	rec = doRequest(e, nethttp.MethodDelete, "/api/delete/"+created.Id.String(), token, "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = doRequest(e, nethttp.MethodGet, "/api/products", token, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Empty(t, products)

	// idempotent delete, even for ids that never existed
	rec = doRequest(e, nethttp.MethodDelete, "/api/delete/"+created.Id.String(), token, "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestSellEndpoint(t *testing.T) {
	e := newTestServer(t)
	token := loginToken(t, e)

	rec := doRequest(e, nethttp.MethodPost, "/api/add", token,
		`{"name":"Pen","price":10,"stock_quantity":5}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var created common.ProductResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(e, nethttp.MethodPost, "/api/sell", token,
		fmt.Sprintf(`{"productId":%q,"quantitySold":3}`, created.Id))
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var sellResult struct {
		Message     string  `json:"message"`
		TotalAmount float64 `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sellResult))
	assert.Equal(t, 30.0, sellResult.TotalAmount)

	rec = doRequest(e, nethttp.MethodPost, "/api/sell", token,
		fmt.Sprintf(`{"productId":%q,"quantitySold":10}`, created.Id))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = doRequest(e, nethttp.MethodGet, "/api/products", token, "")
	var products []common.ProductResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].StockQuantity)

	rec = doRequest(e, nethttp.MethodPost, "/api/sell", token,
		`{"productId":"00000000-0000-0000-0000-000000000001","quantitySold":1}`)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	for _, path := range []string{"/api/sales", "/api/sales-summary"} {
		rec = doRequest(e, nethttp.MethodGet, path, token, "")
		require.Equal(t, nethttp.StatusOK, rec.Code)
		var sales []common.SaleResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
		require.Len(t, sales, 1)
		assert.Equal(t, "Pen", sales[0].ProductName)
		assert.Equal(t, 3, sales[0].QuantitySold)
		assert.Equal(t, 30.0, sales[0].TotalAmount)
	}
}

func TestAuthEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, nethttp.MethodPost, "/api/auth/signup", "",
		`{"name":"Vicky","email":"vicky@example.com","password":"secret123"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doRequest(e, nethttp.MethodPost, "/api/auth/signup", "",
		`{"name":"Other","email":"vicky@example.com","password":"other"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	wrongPass := doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"vicky@example.com","password":"wrong"}`)
	unknown := doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"nobody@example.com","password":"secret123"}`)
	assert.Equal(t, nethttp.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, nethttp.StatusBadRequest, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())

	rec = doRequest(e, nethttp.MethodPost, "/api/auth/login", "",
		`{"email":"vicky@example.com","password":"secret123"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var result struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Token)
	assert.NotContains(t, result.User, "password")
	assert.Equal(t, "vicky@example.com", result.User["email"])
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)
	rec := doRequest(e, nethttp.MethodGet, "/healthz", "", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
