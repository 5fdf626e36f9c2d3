package fsm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"inventory-bridge/core/fetch"
	"inventory-bridge/core/reconcile"
	"inventory-bridge/core/secrets"
	"inventory-bridge/core/utils"
)

// Config holds the connection settings for the field-service platform API.
type Config struct {
	BaseURL        string `mapstructure:"base_url" default:"https://api.sandbox.infraspeak.com/v3"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
	PageLimit      int    `mapstructure:"page_limit" default:"1000"`
	UserAgent      string `mapstructure:"user_agent" default:"inventory-bridge (support@inventory-bridge.io)"`
}

// Client talks to the field-service platform's REST API.
type Client struct {
	baseURL   string
	pageLimit int
	userAgent string
	http      *http.Client
	secrets   secrets.Provider
	logger    *zap.Logger
}

// NewClient constructs a Client.
func NewClient(cfg Config, provider secrets.Provider, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		pageLimit: cfg.PageLimit,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		secrets:   provider,
		logger:    logger,
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	creds, err := c.secrets.Get(ctx)
	if err != nil {
		return fmt.Errorf("resolving api credentials: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.FSMToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

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

func (c *Client) page(resource string, page int) string {
	return fmt.Sprintf("%s?limit=%d&page=%d", resource, c.pageLimit, page)
}

// MaterialCodes returns the code of every material, folders included.
// Entries without a code are skipped.
func (c *Client) MaterialCodes(ctx context.Context) []string {
	return fetch.All(ctx, c.logger, func(ctx context.Context, page int) (fetch.Page[string], error) {
		var env envelope[materialResource]
		if err := c.do(ctx, http.MethodGet, c.page("materials/all", page), nil, &env); err != nil {
			return fetch.Page[string]{}, err
		}

		codes := make([]string, 0, len(env.Data))
		for _, m := range env.Data {
			if m.Attributes.Code != "" {
				codes = append(codes, m.Attributes.Code)
			}
		}
		return fetch.Page[string]{Items: codes, HasNext: env.Links.Next != nil}, nil
	})
}

// Folders returns every folder-capable material keyed by normalized full
// code. Entries without a full code are skipped.
func (c *Client) Folders(ctx context.Context) []Folder {
	return fetch.All(ctx, c.logger, func(ctx context.Context, page int) (fetch.Page[Folder], error) {
		var env envelope[materialResource]
		if err := c.do(ctx, http.MethodGet, c.page("materials", page), nil, &env); err != nil {
			return fetch.Page[Folder]{}, err
		}

		folders := make([]Folder, 0, len(env.Data))
		for _, m := range env.Data {
			code := reconcile.NormalizeCode(m.Attributes.FullCode)
			if code == "" {
				continue
			}
			id, _ := m.Attributes.MaterialID.Int64()
			folders = append(folders, Folder{Code: code, MaterialID: id})
		}
		return fetch.Page[Folder]{Items: folders, HasNext: env.Links.Next != nil}, nil
	})
}

// FindMaterialID resolves a product code to a material id, skipping
// folders (materials without a parent). The walk stops at the first match,
// so a hit on an early page avoids fetching the rest of the catalog.
func (c *Client) FindMaterialID(ctx context.Context, code string) (int64, bool, error) {
	want := reconcile.NormalizeCode(code)

	for page := 1; ; page++ {
		var env envelope[materialResource]
		if err := c.do(ctx, http.MethodGet, c.page("materials/all", page), nil, &env); err != nil {
			return 0, false, err
		}

		for _, m := range env.Data {
			if reconcile.NormalizeCode(m.Attributes.Code) == want && m.Attributes.ParentID != nil {
				id, err := m.ID.Int64()
				if err != nil {
					return 0, false, fmt.Errorf("material %q has non-numeric id %q", code, m.ID)
				}
				return id, true, nil
			}
		}
		if env.Links.Next == nil {
			return 0, false, nil
		}
	}
}

// MaterialQuantity returns the stock level of one material in one
// warehouse. A material with no quantity record counts as zero stock.
func (c *Client) MaterialQuantity(ctx context.Context, materialID int64, warehouseID int) (float64, error) {
	for page := 1; ; page++ {
		var env envelope[quantityResource]
		if err := c.do(ctx, http.MethodGet, c.page("warehouses/material-quantities", page), nil, &env); err != nil {
			return 0, err
		}

		for _, q := range env.Data {
			mid, _ := q.Attributes.MaterialID.Int64()
			wid, _ := q.Attributes.WarehouseID.Int64()
			if mid == materialID && int(wid) == warehouseID {
				return utils.ToFloat64(q.Attributes.StockQuantity), nil
			}
		}
		if env.Links.Next == nil {
			return 0, nil
		}
	}
}

// WarehouseIDs returns the id of every warehouse registered on the
// platform.
func (c *Client) WarehouseIDs(ctx context.Context) ([]int, error) {
	var env envelope[warehouseResource]
	if err := c.do(ctx, http.MethodGet, "warehouses", nil, &env); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(env.Data))
	for _, w := range env.Data {
		ids = append(ids, w.Attributes.WarehouseID)
	}
	return ids, nil
}

// CreateFolder creates a grouping folder and returns its id.
func (c *Client) CreateFolder(ctx context.Context, payload FolderPayload) (int64, error) {
	var out dataOne[materialResource]
	if err := c.do(ctx, http.MethodPost, "materials", payload, &out); err != nil {
		return 0, err
	}

	id, err := out.Data.ID.Int64()
	if err != nil {
		return 0, fmt.Errorf("created folder %q has non-numeric id %q", payload.Code, out.Data.ID)
	}
	return id, nil
}

// CreateMaterial creates a material under a folder and returns its id.
func (c *Client) CreateMaterial(ctx context.Context, payload MaterialPayload) (int64, error) {
	var out dataOne[materialResource]
	if err := c.do(ctx, http.MethodPost, "materials", payload, &out); err != nil {
		return 0, err
	}

	id, err := out.Data.ID.Int64()
	if err != nil {
		return 0, fmt.Errorf("created material %q has non-numeric id %q", payload.Code, out.Data.ID)
	}
	return id, nil
}

// CreateStockMovement posts one stock adjustment.
func (c *Client) CreateStockMovement(ctx context.Context, m reconcile.Movement) error {
	return c.do(ctx, http.MethodPost, "stock-movements", BuildStockMovement(m), nil)
}

// FailureConsumedStock reads the stock consumed against a failure. The
// failure is fetched with its stock relationships expanded and every
// included entry carrying a quantity is taken as a consumption line.
func (c *Client) FailureConsumedStock(ctx context.Context, failureID int64) ([]ConsumedStock, error) {
	endpoint := fmt.Sprintf("failures/%d?expanded=stock.material,stockTasks.material", failureID)

	var env struct {
		Included []includedResource `json:"included"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}

	var consumed []ConsumedStock
	for _, inc := range env.Included {
		if inc.Attributes.Quantity == nil {
			continue
		}
		id, err := inc.ID.Int64()
		if err != nil {
			return nil, fmt.Errorf("failure %d stock entry has non-numeric id %q", failureID, inc.ID)
		}
		consumed = append(consumed, ConsumedStock{
			MaterialID:  id,
			WarehouseID: utils.ToInt(inc.Attributes.WarehouseID),
			Quantity:    utils.ToFloat64(inc.Attributes.Quantity),
		})
	}
	return consumed, nil
}

// MaterialCode resolves a material id back to its product code.
func (c *Client) MaterialCode(ctx context.Context, materialID int64) (string, error) {
	var out dataOne[materialResource]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("materials/%d", materialID), nil, &out); err != nil {
		return "", err
	}
	return out.Data.Attributes.Code, nil
}
