package fsm

import (
	"github.com/shopspring/decimal"

	"inventory-bridge/core/reconcile"
)

// MaterialWarehouse links a material or folder to a warehouse with its
// stocking defaults. The platform requires min_stock of at least 1 and a
// non-empty observation on these links.
type MaterialWarehouse struct {
	WarehouseID int     `json:"warehouse_id"`
	MinStock    int     `json:"min_stock"`
	MeanPrice   float64 `json:"mean_price"`
	Observation string  `json:"observation"`
}

// FolderPayload is the body posted to create a grouping folder.
type FolderPayload struct {
	Type              string              `json:"_type"`
	Name              string              `json:"name"`
	Code              string              `json:"code"`
	Observation       string              `json:"observation"`
	MeanPrice         float64             `json:"mean_price"`
	Units             string              `json:"units"`
	MaterialWarehouse []MaterialWarehouse `json:"material_warehouse"`
	DefaultSellPrice  float64             `json:"default_sell_price"`
	DefaultSellVAT    float64             `json:"default_sell_vat"`
}

// MaterialPayload is the body posted to create a material under a folder.
type MaterialPayload struct {
	Type              string              `json:"_type"`
	Name              string              `json:"name"`
	Code              string              `json:"code"`
	Observation       string              `json:"observation"`
	MeanPrice         float64             `json:"mean_price"`
	Units             string              `json:"units"`
	MaterialWarehouse []MaterialWarehouse `json:"material_warehouse"`
	ParentID          int64               `json:"parent_id"`
	DefaultSellPrice  float64             `json:"default_sell_price"`
	DefaultSellVAT    float64             `json:"default_sell_vat"`
}

// StockMovementPayload is the body posted to adjust warehouse stock.
type StockMovementPayload struct {
	Type        string       `json:"_type"`
	Action      string       `json:"action"`
	WarehouseID int          `json:"warehouse_id"`
	Observation string       `json:"observation"`
	Stocks      []StockEntry `json:"stocks"`
}

// StockEntry is one material line of a stock movement.
type StockEntry struct {
	MaterialID int64   `json:"material_id"`
	Quantity   float64 `json:"quantity"`
}

func warehouseLinks(warehouseIDs []int) []MaterialWarehouse {
	links := make([]MaterialWarehouse, 0, len(warehouseIDs))
	for _, id := range warehouseIDs {
		links = append(links, MaterialWarehouse{
			WarehouseID: id,
			MinStock:    1,
			Observation: "string",
		})
	}
	return links
}

// BuildFolder assembles a FOLDER creation payload linked to the given
// warehouses.
func BuildFolder(code string, warehouseIDs []int) FolderPayload {
	return FolderPayload{
		Type:              "FOLDER",
		Name:              "Folder",
		Code:              code,
		MaterialWarehouse: warehouseLinks(warehouseIDs),
	}
}

// BuildMaterial assembles a MATERIAL creation payload under a folder. The
// mean price carries over the product's average landed cost.
func BuildMaterial(name, code string, meanPrice decimal.Decimal, folderID int64, warehouseIDs []int) MaterialPayload {
	return MaterialPayload{
		Type:              "MATERIAL",
		Name:              name,
		Code:              code,
		MeanPrice:         meanPrice.InexactFloat64(),
		Units:             "un",
		MaterialWarehouse: warehouseLinks(warehouseIDs),
		ParentID:          folderID,
	}
}

// BuildStockMovement assembles a stock-movement payload from a computed
// quantity adjustment.
func BuildStockMovement(m reconcile.Movement) StockMovementPayload {
	return StockMovementPayload{
		Type:        "stock-movement",
		Action:      string(m.Action),
		WarehouseID: m.WarehouseID,
		Observation: "string",
		Stocks: []StockEntry{
			{MaterialID: m.MaterialID, Quantity: m.Quantity},
		},
	}
}
