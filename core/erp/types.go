package erp

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Only the fields the sync jobs read are
// declared; the platform returns considerably more.
type Product struct {
	Guid               string            `json:"Guid"`
	ProductCode        string            `json:"ProductCode"`
	ProductDescription string            `json:"ProductDescription"`
	UnitOfMeasure      string            `json:"UnitOfMeasure"`
	AverageLandPrice   decimal.Decimal   `json:"AverageLandPrice"`
	ProductGroup       *ProductGroup     `json:"ProductGroup"`
	InventoryDetails   []InventoryDetail `json:"InventoryDetails"`
}

// ProductGroup names the grouping a product belongs to.
type ProductGroup struct {
	GroupName string `json:"GroupName"`
}

// InventoryDetail records per warehouse stock settings for a product.
type InventoryDetail struct {
	Warehouse Warehouse `json:"Warehouse"`
}

// Warehouse is a stock location.
type Warehouse struct {
	Guid          string `json:"Guid"`
	WarehouseCode string `json:"WarehouseCode"`
	WarehouseName string `json:"WarehouseName"`
}

// StockOnHand summarises the stock position of one product.
type StockOnHand struct {
	ProductGuid string          `json:"ProductGuid"`
	ProductCode string          `json:"ProductCode"`
	AvgCost     decimal.Decimal `json:"AvgCost"`
}

// WarehouseQuantity is the stock level of one product in one warehouse,
// as returned by the per product AllWarehouses endpoint.
type WarehouseQuantity struct {
	WarehouseId  string  `json:"WarehouseId"`
	AvailableQty float64 `json:"AvailableQty"`
}

// PurchaseOrder is the slice of an order the diff engine tracks.
type PurchaseOrder struct {
	OrderNumber    string `json:"OrderNumber"`
	OrderStatus    string `json:"OrderStatus"`
	LastModifiedOn string `json:"LastModifiedOn"`
	LastModifiedBy string `json:"LastModifiedBy"`
}

var epochDateRe = regexp.MustCompile(`^/Date\((-?\d+)\)/$`)

// ParseDate converts the platform's /Date(ms)/ timestamp encoding into a
// time.Time. The millisecond count is a Unix epoch offset.
func ParseDate(raw string) (time.Time, error) {
	m := epochDateRe.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognised date value %q", raw)
	}

	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date value %q: %w", raw, err)
	}

	return time.UnixMilli(ms), nil
}

// FormatDate renders a /Date(ms)/ timestamp as a human readable string for
// notification messages. Unparseable values pass through unchanged so a
// malformed field never blocks a notification.
func FormatDate(raw string) string {
	t, err := ParseDate(raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("02/01/2006, 15:04:05")
}
