package salesorder

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inventory-bridge/core/config"
	"inventory-bridge/core/erp"
	"inventory-bridge/core/fsm"
)

// failureSource is the slice of the field-service platform client this
// feature reads from.
type failureSource interface {
	FailureConsumedStock(ctx context.Context, failureID int64) ([]fsm.ConsumedStock, error)
	MaterialCode(ctx context.Context, materialID int64) (string, error)
}

// orderSink is the slice of the inventory platform client this feature
// writes to.
type orderSink interface {
	CreateSalesOrder(ctx context.Context, order erp.SalesOrderPayload) error
}

// Service turns closed failures into sales orders.
type Service struct {
	source failureSource
	sink   orderSink
	cfg    config.SalesOrderJobConfig
	logger *zap.Logger

	// newGuid is swappable for deterministic tests.
	newGuid func() string
}

// NewService creates a new salesorder service.
func NewService(source failureSource, sink orderSink, cfg config.SalesOrderJobConfig, logger *zap.Logger) *Service {
	return &Service{
		source:  source,
		sink:    sink,
		cfg:     cfg,
		logger:  logger,
		newGuid: uuid.NewString,
	}
}

// Result summarises one write-back.
type Result struct {
	// FailureID is the failure the order was generated from.
	FailureID int64 `json:"failure_id"`
	// OrderGuid is the GUID the sales order was created under.
	OrderGuid string `json:"order_guid"`
	// Lines is the number of order lines posted.
	Lines int `json:"lines"`
}

// Run reads a failure's consumed stock and posts the matching sales
// order. A failure without consumption lines is a no-op, not an error.
func (s *Service) Run(ctx context.Context, failureID int64) (Result, error) {
	consumed, err := s.source.FailureConsumedStock(ctx, failureID)
	if err != nil {
		return Result{}, fmt.Errorf("reading failure %d: %w", failureID, err)
	}
	if len(consumed) == 0 {
		s.logger.Info("Failure has no consumed stock", zap.Int64("failure_id", failureID))
		return Result{FailureID: failureID}, nil
	}

	items := make([]erp.OrderLineItem, 0, len(consumed))
	for _, line := range consumed {
		code, err := s.source.MaterialCode(ctx, line.MaterialID)
		if err != nil {
			return Result{}, fmt.Errorf("resolving material %d: %w", line.MaterialID, err)
		}
		items = append(items, erp.OrderLineItem{ProductCode: code, Quantity: line.Quantity})
	}

	// The warehouse the first line consumed from covers the whole order;
	// a failure's stock is drawn from a single warehouse in practice.
	warehouseCode := strconv.Itoa(consumed[0].WarehouseID)

	guid := s.newGuid()
	order := erp.BuildSalesOrder(guid, s.cfg.CustomerCode, s.cfg.SalespersonGUID, warehouseCode, items)
	if err := s.sink.CreateSalesOrder(ctx, order); err != nil {
		return Result{}, fmt.Errorf("creating sales order for failure %d: %w", failureID, err)
	}

	s.logger.Info("Sales order created",
		zap.Int64("failure_id", failureID),
		zap.String("order_guid", guid),
		zap.Int("lines", len(items)),
	)
	return Result{FailureID: failureID, OrderGuid: guid, Lines: len(items)}, nil
}
