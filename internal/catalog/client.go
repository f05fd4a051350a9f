package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ayeshakhanum-26/Market-Place-App/internal/market"
	"github.com/google/uuid"
)

// APIError is a structured rejection from the catalog service (non-2xx with
// an {"error": "..."} body). Message is empty when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog: status %d", e.Status)
	}
	return fmt.Sprintf("catalog: status %d: %s", e.Status, e.Message)
}

// Client talks to the remote catalog/order service. One round trip per call,
// no retries and no client-side timeout: a hung request blocks its caller.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]market.Product, error) {
	var out []market.Product
	if err := c.get(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]market.Order, error) {
	var out []market.Order
	if err := c.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, req market.CreateProductRequest) (int64, error) {
	var out struct {
		ProductID int64 `json:"product_id"`
	}
	if err := c.post(ctx, "/products", req, &out); err != nil {
		return 0, err
	}
	return out.ProductID, nil
}

func (c *Client) CreateOrder(ctx context.Context, req market.CreateOrderRequest) (int64, error) {
	var out struct {
		OrderID int64 `json:"order_id"`
	}
	if err := c.post(ctx, "/orders", req, &out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
