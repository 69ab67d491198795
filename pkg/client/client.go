// Package client provides a typed HTTP client for the inventory API. It is
// the programmatic counterpart of the web dashboard: it issues the same
// calls and computes the same derived statistics client-side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/common"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError carries the status and message of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ListProducts(ctx context.Context) ([]*common.ProductResult, error) {
	var products []*common.ProductResult
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) AddProduct(ctx context.Context, cmd *command.CreateProductCommand) (*common.ProductResult, error) {
	var product common.ProductResult
	if err := c.do(ctx, http.MethodPost, "/api/add", cmd, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, cmd *command.UpdateProductCommand) (*common.ProductResult, error) {
	var product common.ProductResult
	if err := c.do(ctx, http.MethodPut, "/api/update/"+id, cmd, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/delete/"+id, nil, nil)
}

type SellResult struct {
	Message     string  `json:"message"`
	TotalAmount float64 `json:"totalAmount"`
}

func (c *Client) Sell(ctx context.Context, productId string, quantitySold int) (*SellResult, error) {
	body := map[string]interface{}{
		"productId":    productId,
		"quantitySold": quantitySold,
	}
	var result SellResult
	if err := c.do(ctx, http.MethodPost, "/api/sell", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListSales(ctx context.Context) ([]*common.SaleResult, error) {
	var sales []*common.SaleResult
	if err := c.do(ctx, http.MethodGet, "/api/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	body := &command.SignupUserCommand{Name: name, Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/api/auth/signup", body, nil)
}

// Login authenticates and remembers the issued token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*command.LoginUserCommandResult, error) {
	body := &command.LoginUserCommand{Email: email, Password: password}
	var result command.LoginUserCommandResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}
