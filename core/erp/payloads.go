package erp

// SalesOrderPayload is the body posted to SalesOrders/{guid}. The platform
// rejects a zero exchange rate, so submissions carry a nominal positive one.
type SalesOrderPayload struct {
	Guid            string           `json:"Guid"`
	OrderStatus     string           `json:"OrderStatus"`
	Customer        CustomerRef      `json:"Customer"`
	Salesperson     SalespersonRef   `json:"Salesperson"`
	Warehouse       WarehouseRef     `json:"Warehouse"`
	ExchangeRate    float64          `json:"ExchangeRate"`
	SalesOrderLines []SalesOrderLine `json:"SalesOrderLines"`
	SubTotal        float64          `json:"SubTotal"`
	TaxRate         float64          `json:"TaxRate"`
	TaxTotal        float64          `json:"TaxTotal"`
	Total           float64          `json:"Total"`
}

// CustomerRef identifies a customer by code.
type CustomerRef struct {
	CustomerCode string `json:"CustomerCode"`
}

// SalespersonRef identifies a salesperson by GUID.
type SalespersonRef struct {
	Guid string `json:"Guid"`
}

// WarehouseRef identifies a warehouse by code.
type WarehouseRef struct {
	WarehouseCode string `json:"WarehouseCode"`
}

// SalesOrderLine is one line of a sales order.
type SalesOrderLine struct {
	LineNumber    int        `json:"LineNumber"`
	Product       ProductRef `json:"Product"`
	OrderQuantity float64    `json:"OrderQuantity"`
	UnitPrice     float64    `json:"UnitPrice"`
	DiscountRate  float64    `json:"DiscountRate"`
	LineTax       float64    `json:"LineTax"`
	LineTotal     float64    `json:"LineTotal"`
}

// ProductRef identifies a product by code.
type ProductRef struct {
	ProductCode string `json:"ProductCode"`
}

// OrderLineItem is a consumed-stock entry to be written back as a sales
// order line.
type OrderLineItem struct {
	ProductCode string
	Quantity    float64
}

// BuildSalesOrder assembles a completed sales order from consumed stock.
// Line numbers start at 1 and follow item order. Monetary fields are left
// at zero: the write-back records consumption, not revenue.
func BuildSalesOrder(guid, customerCode, salespersonGuid, warehouseCode string, items []OrderLineItem) SalesOrderPayload {
	lines := make([]SalesOrderLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, SalesOrderLine{
			LineNumber:    i + 1,
			Product:       ProductRef{ProductCode: item.ProductCode},
			OrderQuantity: item.Quantity,
		})
	}

	return SalesOrderPayload{
		Guid:            guid,
		OrderStatus:     "Completed",
		Customer:        CustomerRef{CustomerCode: customerCode},
		Salesperson:     SalespersonRef{Guid: salespersonGuid},
		Warehouse:       WarehouseRef{WarehouseCode: warehouseCode},
		ExchangeRate:    0.10,
		SalesOrderLines: lines,
	}
}
