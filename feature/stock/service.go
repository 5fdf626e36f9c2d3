package stock

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"inventory-bridge/core/erp"
	"inventory-bridge/core/metrics"
	"inventory-bridge/core/reconcile"
	"inventory-bridge/core/sched"
)

// stockSource is the slice of the inventory platform client this feature
// reads from.
type stockSource interface {
	StockOnHand(ctx context.Context) []erp.StockOnHand
	ProductWarehouses(ctx context.Context, productGuid string) ([]erp.WarehouseQuantity, error)
	Warehouses(ctx context.Context) []erp.Warehouse
}

// stockTarget is the slice of the field-service platform client this
// feature reconciles against.
type stockTarget interface {
	FindMaterialID(ctx context.Context, code string) (int64, bool, error)
	MaterialQuantity(ctx context.Context, materialID int64, warehouseID int) (float64, error)
	CreateStockMovement(ctx context.Context, m reconcile.Movement) error
}

// Service runs the stock level reconciliation.
type Service struct {
	source stockSource
	target stockTarget
	logger *zap.Logger
	gate   sched.Gate
}

// NewService creates a new stock service.
func NewService(source stockSource, target stockTarget, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		target: target,
		logger: logger,
	}
}

// Result summarises one run.
type Result struct {
	// ItemsProcessed is the number of stock-on-hand entries examined.
	ItemsProcessed int `json:"items_processed"`
	// MovementsPosted is the number of stock adjustments written.
	MovementsPosted int `json:"movements_posted"`
	// ItemsSkipped counts entries dropped because the feed expansion or
	// the material lookup failed.
	ItemsSkipped int `json:"items_skipped"`
	// PairsFailed counts individual warehouse pairs dropped after a read
	// or write failure. The rest of the product's pairs still run.
	PairsFailed int `json:"pairs_failed"`
}

// Run reconciles every product's warehouse quantities. Items are
// dispatched concurrently; each item's own reads and writes stay
// sequential, and item failures are isolated. At most one run executes
// at a time; a trigger landing mid-run fails with sched.ErrRunInFlight.
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
	items := s.source.StockOnHand(ctx)
	warehouseCodes := s.warehouseCodesByGuid(ctx)

	var posted, skipped, failed atomic.Int32
	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func(item erp.StockOnHand) {
			defer wg.Done()
			n, dropped, err := s.reconcileItem(ctx, item, warehouseCodes)
			if err != nil {
				s.logger.Error("Stock item failed, skipping",
					zap.String("product_code", item.ProductCode),
					zap.Error(err),
				)
				skipped.Add(1)
				return
			}
			posted.Add(int32(n))
			failed.Add(int32(dropped))
		}(item)
	}
	wg.Wait()

	res := Result{
		ItemsProcessed:  len(items),
		MovementsPosted: int(posted.Load()),
		ItemsSkipped:    int(skipped.Load()),
		PairsFailed:     int(failed.Load()),
	}
	s.logger.Info("Stock sync finished",
		zap.Int("items", res.ItemsProcessed),
		zap.Int("movements", res.MovementsPosted),
		zap.Int("skipped", res.ItemsSkipped),
		zap.Int("pairs_failed", res.PairsFailed),
	)
	return res, nil
}

// reconcileItem drives one product's warehouse pairs. It returns the
// number of movements posted and the number of pairs dropped after a
// failure. A failing pair never takes the product's other pairs with it;
// only the feed expansion and the material lookup, which every pair
// depends on, abort the whole item.
func (s *Service) reconcileItem(ctx context.Context, item erp.StockOnHand, warehouseCodes map[string]string) (int, int, error) {
	quantities, err := s.source.ProductWarehouses(ctx, item.ProductGuid)
	if err != nil {
		return 0, 0, err
	}

	materialID, found, err := s.target.FindMaterialID(ctx, item.ProductCode)
	if err != nil {
		return 0, 0, err
	}
	if !found {
		s.logger.Warn("No material for product code, skipping",
			zap.String("product_code", item.ProductCode),
		)
		return 0, 0, nil
	}

	posted, failed := 0, 0
	for _, wq := range quantities {
		code, ok := warehouseCodes[wq.WarehouseId]
		if !ok {
			s.logger.Warn("Unknown warehouse guid, skipping quantity",
				zap.String("product_code", item.ProductCode),
				zap.String("warehouse_guid", wq.WarehouseId),
			)
			continue
		}
		warehouseID, err := strconv.Atoi(code)
		if err != nil {
			s.logger.Warn("Warehouse code is not numeric, skipping quantity",
				zap.String("product_code", item.ProductCode),
				zap.String("warehouse_code", code),
			)
			continue
		}

		current, err := s.target.MaterialQuantity(ctx, materialID, warehouseID)
		if err != nil {
			s.logger.Error("Failed to read material quantity, dropping pair",
				zap.String("product_code", item.ProductCode),
				zap.Int("warehouse_id", warehouseID),
				zap.Error(err),
			)
			failed++
			continue
		}

		movement, needed := reconcile.StockDelta(materialID, warehouseID, wq.AvailableQty, current)
		if !needed {
			s.logger.Debug("Quantities already match",
				zap.String("product_code", item.ProductCode),
				zap.Int("warehouse_id", warehouseID),
			)
			continue
		}

		if err := s.target.CreateStockMovement(ctx, movement); err != nil {
			s.logger.Error("Failed to post stock movement, dropping pair",
				zap.String("product_code", item.ProductCode),
				zap.Int("warehouse_id", warehouseID),
				zap.Error(err),
			)
			failed++
			continue
		}
		metrics.RecordMovement(string(movement.Action))
		posted++
	}
	return posted, failed, nil
}

// warehouseCodesByGuid maps warehouse guids to their numeric codes. The
// feed references warehouses by guid while the target platform keys them
// by code, so the mapping is resolved once per run.
func (s *Service) warehouseCodesByGuid(ctx context.Context) map[string]string {
	warehouses := s.source.Warehouses(ctx)
	codes := make(map[string]string, len(warehouses))
	for _, w := range warehouses {
		codes[w.Guid] = w.WarehouseCode
	}
	return codes
}
