package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"inventory-bridge/core/fetch"
	"inventory-bridge/core/secrets"
)

// Config holds the connection settings for the inventory platform API.
type Config struct {
	BaseURL        string `mapstructure:"base_url" default:"https://api.unleashedsoftware.com"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
	PageSize       int    `mapstructure:"page_size" default:"200"`
}

// Client talks to the inventory platform's REST API. Every request is
// signed per call with credentials resolved through the secrets provider,
// so a credential rotation takes effect without a restart.
type Client struct {
	baseURL    string
	pageSize   int
	clientType string
	http       *http.Client
	secrets    secrets.Provider
	logger     *zap.Logger
}

// NewClient constructs a Client. clientType names the calling job and is
// sent on every request for the platform's audit trail.
func NewClient(cfg Config, provider secrets.Provider, logger *zap.Logger, clientType string) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		clientType: "inventory-bridge/" + clientType,
		http:       &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		secrets:    provider,
		logger:     logger,
	}
}

// pageEnvelope is the platform's paginated response wrapper.
type pageEnvelope[T any] struct {
	Items      []T `json:"Items"`
	Pagination struct {
		NumberOfPages int `json:"NumberOfPages"`
	} `json:"Pagination"`
}

func (c *Client) do(ctx context.Context, method, endpoint, urlParams string, body, out any) error {
	creds, err := c.secrets.Get(ctx)
	if err != nil {
		return fmt.Errorf("resolving api credentials: %w", err)
	}

	url := c.baseURL + "/" + endpoint
	if urlParams != "" {
		url += "?" + urlParams
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-auth-id", creds.ERPAPIID)
	req.Header.Set("api-auth-signature", Signature(urlParams, creds.ERPAPIKey))
	req.Header.Set("client-type", c.clientType)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("calling %s: unexpected status %d: %s", endpoint, res.StatusCode, snippet)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s response: %w", endpoint, err)
		}
	}
	return nil
}

// fetchPages walks every page of a resource, starting at page 1. The
// platform reports the total page count on each response, so paging stops
// once the reported count is reached.
func fetchPages[T any](ctx context.Context, c *Client, resource string) []T {
	return fetch.All(ctx, c.logger, func(ctx context.Context, page int) (fetch.Page[T], error) {
		endpoint := fmt.Sprintf("%s/Page/%d", resource, page)
		urlParams := "pageSize=" + strconv.Itoa(c.pageSize)

		var env pageEnvelope[T]
		if err := c.do(ctx, http.MethodGet, endpoint, urlParams, nil, &env); err != nil {
			return fetch.Page[T]{}, err
		}
		return fetch.Page[T]{
			Items:   env.Items,
			HasNext: page < env.Pagination.NumberOfPages,
		}, nil
	})
}

// Products returns every product in the catalog.
func (c *Client) Products(ctx context.Context) []Product {
	return fetchPages[Product](ctx, c, "Products")
}

// PurchaseOrders returns every purchase order regardless of status.
func (c *Client) PurchaseOrders(ctx context.Context) []PurchaseOrder {
	return fetchPages[PurchaseOrder](ctx, c, "PurchaseOrders")
}

// StockOnHand returns the stock position of every product.
func (c *Client) StockOnHand(ctx context.Context) []StockOnHand {
	return fetchPages[StockOnHand](ctx, c, "StockOnHand")
}

// Warehouses returns every stock location.
func (c *Client) Warehouses(ctx context.Context) []Warehouse {
	return fetchPages[Warehouse](ctx, c, "Warehouses")
}

// ProductWarehouses returns the per warehouse quantities for one product.
func (c *Client) ProductWarehouses(ctx context.Context, productGuid string) ([]WarehouseQuantity, error) {
	endpoint := fmt.Sprintf("StockOnHand/%s/AllWarehouses", productGuid)

	var env pageEnvelope[WarehouseQuantity]
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// CreateSalesOrder submits a new sales order under the given GUID.
func (c *Client) CreateSalesOrder(ctx context.Context, order SalesOrderPayload) error {
	endpoint := "SalesOrders/" + order.Guid
	return c.do(ctx, http.MethodPost, endpoint, "", order, nil)
}
