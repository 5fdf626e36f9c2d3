// Package store persists the purchase-order snapshot between job runs.
//
// The snapshot is a key-value table keyed by purchase order number,
// supporting scan-all, put and delete. Two backends implement the Store
// interface:
//
//   - DynamoStore: the production backend, a DynamoDB table with
//     dynamodbav-tagged records.
//   - MySQLStore: a gorm-backed table for self-hosted deployments.
//
// The diff engine in core/reconcile guarantees that no record with the
// terminal "Complete" status is ever written here; completion removes the
// record instead.
package store
