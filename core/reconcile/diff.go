package reconcile

import (
	"context"
	"fmt"

	"inventory-bridge/core/store"
)

// Purchase-order status values with special meaning to the diff engine.
const (
	// StatusComplete is the terminal status: a completed order is removed
	// from tracking rather than retained.
	StatusComplete = "Complete"
	// StatusDeleted is the synthetic status reported when an order
	// disappears from the source feed.
	StatusDeleted = "Deleted"
)

// Change describes one detected purchase-order transition. An empty
// OldStatus marks a first sighting.
type Change struct {
	Number         string `json:"purchase_order_number"`
	OldStatus      string `json:"old_status,omitempty"`
	NewStatus      string `json:"new_status"`
	LastModifiedOn string `json:"last_modified_on"`
	LastModifiedBy string `json:"last_modified_by"`
}

// IsNew reports whether this change is a first sighting.
func (c Change) IsNew() bool {
	return c.OldStatus == ""
}

// OrderOpType identifies a planned store mutation.
type OrderOpType string

const (
	// OpPut inserts or replaces a snapshot record.
	OpPut OrderOpType = "put"
	// OpDelete removes a snapshot record.
	OpDelete OrderOpType = "delete"
)

// OrderOp is one planned store mutation. For deletes only Record.Number is
// meaningful.
type OrderOp struct {
	Type   OrderOpType
	Record store.PurchaseOrder
}

// OrderPlan is the outcome of diffing an incoming feed against the
// persisted snapshot: the changes to report and the store mutations that
// realize them.
type OrderPlan struct {
	Changes []Change
	Ops     []OrderOp
}

// IsEmpty reports whether the plan contains no changes and no mutations.
// An empty plan means "ran, nothing changed" and callers skip notification.
func (p *OrderPlan) IsEmpty() bool {
	return len(p.Changes) == 0 && len(p.Ops) == 0
}

// BuildOrderPlan diffs the incoming feed against the existing snapshot.
// It is pure: no store access happens here.
//
// Classification, in emission order:
//  1. Every existing record absent from the feed is deleted and reported
//     with the synthetic "Deleted" status.
//  2. Each incoming record, in feed order:
//     - tracked and now Complete: delete, report old -> Complete;
//     - tracked with a different status: put, report old -> new;
//     - tracked and unchanged: nothing;
//     - untracked and non-terminal: put, report first sighting;
//     - untracked and already Complete: nothing to track.
//
// Running the plan's mutations and rebuilding against the same feed yields
// an empty plan (idempotence).
func BuildOrderPlan(incoming, existing []store.PurchaseOrder) *OrderPlan {
	plan := &OrderPlan{
		Changes: []Change{},
		Ops:     []OrderOp{},
	}

	incomingSet := make(map[string]struct{}, len(incoming))
	for _, po := range incoming {
		incomingSet[po.Number] = struct{}{}
	}

	existingByNumber := make(map[string]store.PurchaseOrder, len(existing))
	for _, po := range existing {
		existingByNumber[po.Number] = po
	}

	// Step 1: orders that disappeared from the feed
	for _, po := range existing {
		if _, ok := incomingSet[po.Number]; ok {
			continue
		}
		plan.Ops = append(plan.Ops, OrderOp{Type: OpDelete, Record: po})
		plan.Changes = append(plan.Changes, Change{
			Number:         po.Number,
			OldStatus:      po.Status,
			NewStatus:      StatusDeleted,
			LastModifiedOn: po.LastModifiedOn,
			LastModifiedBy: po.LastModifiedBy,
		})
	}

	// Step 2: incoming orders, in feed order
	for _, po := range incoming {
		prev, tracked := existingByNumber[po.Number]

		switch {
		case tracked && po.Status == StatusComplete:
			plan.Ops = append(plan.Ops, OrderOp{Type: OpDelete, Record: po})
			plan.Changes = append(plan.Changes, Change{
				Number:         po.Number,
				OldStatus:      prev.Status,
				NewStatus:      StatusComplete,
				LastModifiedOn: po.LastModifiedOn,
				LastModifiedBy: po.LastModifiedBy,
			})

		case tracked && po.Status != prev.Status:
			plan.Ops = append(plan.Ops, OrderOp{Type: OpPut, Record: po})
			plan.Changes = append(plan.Changes, Change{
				Number:         po.Number,
				OldStatus:      prev.Status,
				NewStatus:      po.Status,
				LastModifiedOn: po.LastModifiedOn,
				LastModifiedBy: po.LastModifiedBy,
			})

		case !tracked && po.Status != StatusComplete:
			plan.Ops = append(plan.Ops, OrderOp{Type: OpPut, Record: po})
			plan.Changes = append(plan.Changes, Change{
				Number:         po.Number,
				NewStatus:      po.Status,
				LastModifiedOn: po.LastModifiedOn,
				LastModifiedBy: po.LastModifiedBy,
			})
		}
	}

	return plan
}

// ApplyOrderPlan executes the plan's store mutations in order. Any store
// failure aborts immediately: a partially applied plan is reported as an
// error so the caller does not notify on inconsistent state.
func ApplyOrderPlan(ctx context.Context, st store.Store, plan *OrderPlan) error {
	for _, op := range plan.Ops {
		switch op.Type {
		case OpPut:
			if err := st.Put(ctx, op.Record); err != nil {
				return fmt.Errorf("failed to store order %s: %w", op.Record.Number, err)
			}
		case OpDelete:
			if err := st.Delete(ctx, op.Record.Number); err != nil {
				return fmt.Errorf("failed to remove order %s: %w", op.Record.Number, err)
			}
		}
	}
	return nil
}

// SyncOrders runs the full snapshot diff: scan the store, build the plan,
// apply the mutations, and return the detected changes. An empty change
// list means the run converged with nothing to report.
func SyncOrders(ctx context.Context, st store.Store, incoming []store.PurchaseOrder) ([]Change, error) {
	existing, err := st.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read order snapshot: %w", err)
	}

	plan := BuildOrderPlan(incoming, existing)
	if err := ApplyOrderPlan(ctx, st, plan); err != nil {
		return nil, err
	}

	return plan.Changes, nil
}
