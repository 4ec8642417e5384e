package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowshop/internal/client/models"
	"glowshop/internal/common"
)

// HTTPClient talks JSON over HTTP to the storefront API. Every request gets
// a bounded timeout and a fresh request id header.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
	}
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// do performs one request. A nil out discards the response body; the server's
// mutation responses carry nothing the client depends on.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode, resp.Status); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func mapStatus(code int, status string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code == http.StatusBadRequest:
		return common.ErrValidation
	default:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, status)
	}
}

func (c *HTTPClient) SeedProducts(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/init-products", nil, nil, nil)
}

func (c *HTTPClient) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPClient) Cart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (c *HTTPClient) AddCartItem(ctx context.Context, productID string, quantity int) error {
	req := addCartItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/api/cart", nil, req, nil)
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(itemID), nil, nil, nil)
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, itemID string, quantity int) error {
	// The API takes the new quantity as a query parameter, not a body.
	query := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	return c.do(ctx, http.MethodPut, "/api/cart/"+url.PathEscape(itemID), query, nil, nil)
}

func (c *HTTPClient) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", nil, nil, nil)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (c *HTTPClient) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	err := c.do(ctx, http.MethodPost, "/api/newsletter", nil, subscribeRequest{Email: email}, &sub)
	if err != nil {
		// The server signals a duplicate with a client-error status.
		if errors.Is(err, common.ErrValidation) {
			return nil, common.ErrAlreadySubscribed
		}
		return nil, err
	}
	return &sub, nil
}
