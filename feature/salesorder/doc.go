// Package salesorder implements the consumed-stock write-back feature.
//
// When a failure (work order) is closed on the field-service platform its
// consumed stock has already left a warehouse there, but the inventory
// platform still counts it. This feature reads the failure's consumption
// lines, resolves each material back to its product code, and posts a
// completed sales order to the inventory platform so both stock positions
// agree again.
package salesorder
