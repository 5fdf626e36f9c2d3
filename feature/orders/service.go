package orders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-bridge/core/erp"
	"inventory-bridge/core/metrics"
	"inventory-bridge/core/notify"
	"inventory-bridge/core/reconcile"
	"inventory-bridge/core/sched"
	"inventory-bridge/core/store"
)

// orderSource is the slice of the inventory platform client this feature
// reads from.
type orderSource interface {
	PurchaseOrders(ctx context.Context) []erp.PurchaseOrder
}

// Service runs the purchase order diff cycle.
type Service struct {
	source   orderSource
	store    store.Store
	notifier notify.Notifier
	logger   *zap.Logger
	gate     sched.Gate
}

// NewService creates a new orders service.
func NewService(source orderSource, st store.Store, notifier notify.Notifier, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

// Result summarises one run.
type Result struct {
	// OrdersSeen is the number of orders in the fetched feed.
	OrdersSeen int `json:"orders_seen"`
	// Changes are the detected transitions, empty when the run converged.
	Changes []reconcile.Change `json:"changes"`
	// Notified reports whether a summary was published.
	Notified bool `json:"notified"`
}

// Run fetches the feed, syncs the snapshot and notifies on any change. A
// run with no changes publishes nothing. At most one run executes at a
// time; a trigger landing mid-run fails with sched.ErrRunInFlight.
func (s *Service) Run(ctx context.Context) (Result, error) {
	var res Result
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.run(ctx)
		return err
	})
	return res, err
}

func (s *Service) run(ctx context.Context) (Result, error) {
	changes, seen, err := s.sync(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{OrdersSeen: seen, Changes: changes}
	if len(changes) == 0 {
		s.logger.Info("Purchase orders converged, nothing to report", zap.Int("orders_seen", seen))
		return res, nil
	}

	for _, c := range changes {
		metrics.RecordOrderChange(changeKind(c))
	}

	message := notify.FormatOrderChanges(changes)
	if err := s.notifier.Publish(ctx, notify.OrderSubject, message); err != nil {
		return res, fmt.Errorf("publishing order summary: %w", err)
	}
	res.Notified = true

	s.logger.Info("Purchase order changes published",
		zap.Int("orders_seen", seen),
		zap.Int("changes", len(changes)),
	)
	return res, nil
}

// Plan fetches the feed and builds the diff without applying it. Used by
// the dry-run endpoint.
func (s *Service) Plan(ctx context.Context) (*reconcile.OrderPlan, error) {
	incoming := s.fetchIncoming(ctx)

	existing, err := s.store.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading order snapshot: %w", err)
	}
	return reconcile.BuildOrderPlan(incoming, existing), nil
}

func (s *Service) sync(ctx context.Context) ([]reconcile.Change, int, error) {
	incoming := s.fetchIncoming(ctx)

	changes, err := reconcile.SyncOrders(ctx, s.store, incoming)
	if err != nil {
		return nil, 0, err
	}
	return changes, len(incoming), nil
}

func (s *Service) fetchIncoming(ctx context.Context) []store.PurchaseOrder {
	orders := s.source.PurchaseOrders(ctx)

	incoming := make([]store.PurchaseOrder, 0, len(orders))
	for _, po := range orders {
		incoming = append(incoming, store.PurchaseOrder{
			Number:         po.OrderNumber,
			Status:         po.OrderStatus,
			LastModifiedOn: erp.FormatDate(po.LastModifiedOn),
			LastModifiedBy: po.LastModifiedBy,
		})
	}
	return incoming
}

func changeKind(c reconcile.Change) string {
	switch {
	case c.IsNew():
		return "created"
	case c.NewStatus == reconcile.StatusDeleted:
		return "deleted"
	case c.NewStatus == reconcile.StatusComplete:
		return "completed"
	default:
		return "status_change"
	}
}
