// Package stock implements the stock level sync feature.
//
// It treats the inventory platform's on-hand quantities as authoritative
// and drives the field-service platform's warehouse stock toward them. For
// every product and warehouse pair the delta between the two platforms is
// computed via core/reconcile and posted as an ADD or ABATE stock
// movement; equal quantities produce no write.
//
// Items are processed concurrently. A failure on one item is logged and
// isolated; it never aborts the run.
package stock
