package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/feriago/orders/internal/domain/model"
)

// ErrProductNotFound indicates the catalog has no record for the product.
var ErrProductNotFound = errors.New("product not found")

// Client exposes operations against the remote catalog service. The token
// argument is the caller's Authorization header, forwarded verbatim.
type Client interface {
	Product(ctx context.Context, token, id string) (*model.CatalogProduct, error)
	UpdateQuantity(ctx context.Context, token, id string, quantity int) error
}

// HTTPClient implements Client via the catalog HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// productResponse mirrors the catalog's response envelope.
type productResponse struct {
	Data struct {
		Name        string  `json:"name"`
		Quantity    int     `json:"quantity"`
		UnitAmount  float64 `json:"unit_amount"`
		ImageURL    string  `json:"image_url"`
		Description string  `json:"description"`
		CategoryID  string  `json:"category_id"`
	} `json:"data"`
}

// NewHTTPClient creates an HTTP catalog client. Every call carries the
// provided timeout; the catalog lives in a separate system and must never
// hold this service's request path indefinitely.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Product fetches the product record for id.
func (c *HTTPClient) Product(ctx context.Context, token, id string) (*model.CatalogProduct, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/products/", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data productResponse
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		return &model.CatalogProduct{
			ID:          id,
			Name:        data.Data.Name,
			Quantity:    data.Data.Quantity,
			UnitAmount:  data.Data.UnitAmount,
			ImageURL:    data.Data.ImageURL,
			Description: data.Data.Description,
			CategoryID:  data.Data.CategoryID,
		}, nil
	case http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}

// UpdateQuantity sets the absolute stock quantity for the product.
func (c *HTTPClient) UpdateQuantity(ctx context.Context, token, id string, quantity int) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/products/", id, "/quantity")

	payload, err := json.Marshal(map[string]int{"quantity": quantity})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog quantity update failed",
			slog.String("product_id", id),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return fmt.Errorf("catalog error: %s", resp.Status)
	}

	return nil
}
