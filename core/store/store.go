package store

import "context"

// PurchaseOrder is the tracked state of a single purchase order.
// Number is the unique key; a record only exists while the order is in a
// non-terminal status.
type PurchaseOrder struct {
	Number         string `dynamodbav:"purchaseOrderNumber" gorm:"column:purchase_order_number;primaryKey;size:64"`
	Status         string `dynamodbav:"purchaseOrderStatus" gorm:"column:status;size:32"`
	LastModifiedOn string `dynamodbav:"lastModifiedOn" gorm:"column:last_modified_on;size:64"`
	LastModifiedBy string `dynamodbav:"lastModifiedBy" gorm:"column:last_modified_by;size:128"`
}

// TableName implements the gorm table naming convention.
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// Store is the persisted purchase-order snapshot.
//
// Implementations are not expected to be transactional: the diff engine
// issues independent Put/Delete calls and a run killed mid-flight may leave
// the snapshot partially updated. The per-job run gate guarantees at most
// one in-flight run, so no concurrency guard is required.
type Store interface {
	// Scan returns every tracked purchase order.
	Scan(ctx context.Context) ([]PurchaseOrder, error)
	// Put inserts or replaces the record keyed by po.Number.
	Put(ctx context.Context, po PurchaseOrder) error
	// Delete removes the record for the given order number.
	// Deleting an absent record is not an error.
	Delete(ctx context.Context, number string) error
}
