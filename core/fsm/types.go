package fsm

import (
	"encoding/json"
)

// envelope is the platform's collection response wrapper. Single-resource
// endpoints reuse it with Data holding one element semantics via dataOne.
type envelope[T any] struct {
	Data  []T `json:"data"`
	Links struct {
		Next *string `json:"next"`
	} `json:"links"`
}

// dataOne wraps endpoints that return a single resource under data.
type dataOne[T any] struct {
	Data T `json:"data"`
}

// materialResource is a material or folder as listed by the materials
// endpoints. IDs arrive as JSON strings or numbers depending on endpoint,
// hence json.Number.
type materialResource struct {
	ID         json.Number        `json:"id"`
	Attributes materialAttributes `json:"attributes"`
}

type materialAttributes struct {
	Code       string      `json:"code"`
	FullCode   string      `json:"full_code"`
	MaterialID json.Number `json:"material_id"`
	ParentID   *int64      `json:"parent_id"`
}

// includedResource is a relationship expansion entry. Attribute types vary
// per resource kind, so the loose fields are coerced by the caller.
type includedResource struct {
	ID         json.Number `json:"id"`
	Attributes struct {
		Quantity    any `json:"quantity"`
		WarehouseID any `json:"warehouse_id"`
	} `json:"attributes"`
}

// quantityResource is one entry of the warehouse material-quantities feed.
type quantityResource struct {
	Attributes struct {
		MaterialID    json.Number `json:"material_id"`
		WarehouseID   json.Number `json:"warehouse_id"`
		StockQuantity any         `json:"stock_quantity"`
	} `json:"attributes"`
}

// warehouseResource is one entry of the warehouses feed.
type warehouseResource struct {
	ID         json.Number `json:"id"`
	Attributes struct {
		WarehouseID int `json:"warehouse_id"`
	} `json:"attributes"`
}

// Folder pairs a folder's normalized code with its material id.
type Folder struct {
	Code       string
	MaterialID int64
}

// ConsumedStock is one consumed-stock line read off a closed failure.
type ConsumedStock struct {
	MaterialID  int64
	WarehouseID int
	Quantity    float64
}
