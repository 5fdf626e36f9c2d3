// Package orders implements the purchase order status sync feature.
//
// It polls the inventory platform's purchase order feed, diffs it against
// the persisted snapshot via core/reconcile, applies the resulting store
// mutations, and publishes a plain-text summary of the detected changes to
// the notification topic. Orders that reach the terminal Complete status
// are dropped from tracking; orders that disappear from the feed are
// reported as deleted.
//
// # Components
//
//   - Service: Runs the diff cycle and dispatches notifications.
//   - Handler: Exposes the webhook trigger and a dry-run preview endpoint.
//   - Feature: Registers the module with the application loader.
package orders
