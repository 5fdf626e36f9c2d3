// Package reconcile contains the diffing core shared by all sync jobs.
//
// It provides four building blocks:
//
//   - NormalizeCode: canonicalizes product/material identifiers so
//     cross-platform comparison is stable.
//   - UnmatchedCodes: the asymmetric set difference between two identifier
//     sequences (present in the source, absent from the target).
//   - The snapshot diff engine (BuildOrderPlan / ApplyOrderPlan /
//     SyncOrders): compares a freshly fetched purchase-order feed against
//     the persisted snapshot and classifies each record as created,
//     updated, deleted or unchanged, driving the corresponding store
//     mutations.
//   - StockDelta: the signed quantity adjustment between the authoritative
//     and target on-hand figures for one product/warehouse pair.
//
// Planning is pure; only ApplyOrderPlan touches the store. This mirrors
// the plan-then-apply split used elsewhere in the codebase and keeps the
// classification logic unit-testable without any backend.
package reconcile
