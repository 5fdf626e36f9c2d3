package salesorder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-bridge/core/config"
	"inventory-bridge/core/erp"
	"inventory-bridge/core/fsm"
)

type fakeFailures struct {
	consumed map[int64][]fsm.ConsumedStock
	codes    map[int64]string
}

func (f *fakeFailures) FailureConsumedStock(ctx context.Context, failureID int64) ([]fsm.ConsumedStock, error) {
	lines, ok := f.consumed[failureID]
	if !ok {
		return nil, errors.New("failure not found")
	}
	return lines, nil
}

func (f *fakeFailures) MaterialCode(ctx context.Context, materialID int64) (string, error) {
	code, ok := f.codes[materialID]
	if !ok {
		return "", fmt.Errorf("material %d not found", materialID)
	}
	return code, nil
}

type fakeSink struct {
	orders []erp.SalesOrderPayload
	err    error
}

func (f *fakeSink) CreateSalesOrder(ctx context.Context, order erp.SalesOrderPayload) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, order)
	return nil
}

func testService(source failureSource, sink orderSink) *Service {
	cfg := config.SalesOrderJobConfig{
		CustomerCode:    "Bank West",
		SalespersonGUID: "sp-guid",
	}
	svc := NewService(source, sink, cfg, zap.NewNop())
	svc.newGuid = func() string { return "fixed-guid" }
	return svc
}

func TestRunBuildsOrderFromConsumedStock(t *testing.T) {
	source := &fakeFailures{
		consumed: map[int64][]fsm.ConsumedStock{
			686272: {
				{MaterialID: 55, WarehouseID: 16, Quantity: 3},
				{MaterialID: 56, WarehouseID: 16, Quantity: 1.5},
			},
		},
		codes: map[int64]string{55: "00.0130-8383", 56: "15.HBF-08-08"},
	}
	sink := &fakeSink{}

	res, err := testService(source, sink).Run(context.Background(), 686272)

	require.NoError(t, err)
	assert.Equal(t, "fixed-guid", res.OrderGuid)
	assert.Equal(t, 2, res.Lines)

	require.Len(t, sink.orders, 1)
	order := sink.orders[0]
	assert.Equal(t, "fixed-guid", order.Guid)
	assert.Equal(t, "Completed", order.OrderStatus)
	assert.Equal(t, "Bank West", order.Customer.CustomerCode)
	assert.Equal(t, "sp-guid", order.Salesperson.Guid)
	assert.Equal(t, "16", order.Warehouse.WarehouseCode)
	require.Len(t, order.SalesOrderLines, 2)
	assert.Equal(t, "00.0130-8383", order.SalesOrderLines[0].Product.ProductCode)
	assert.Equal(t, 3.0, order.SalesOrderLines[0].OrderQuantity)
	assert.Equal(t, 2, order.SalesOrderLines[1].LineNumber)
}

func TestRunEmptyFailureIsNoop(t *testing.T) {
	source := &fakeFailures{
		consumed: map[int64][]fsm.ConsumedStock{1: {}},
	}
	sink := &fakeSink{}

	res, err := testService(source, sink).Run(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, res.OrderGuid)
	assert.Empty(t, sink.orders)
}

func TestRunMaterialLookupFailureAborts(t *testing.T) {
	source := &fakeFailures{
		consumed: map[int64][]fsm.ConsumedStock{
			1: {{MaterialID: 99, WarehouseID: 16, Quantity: 1}},
		},
		codes: map[int64]string{},
	}
	sink := &fakeSink{}

	_, err := testService(source, sink).Run(context.Background(), 1)

	assert.ErrorContains(t, err, "material 99")
	assert.Empty(t, sink.orders)
}

func TestRunSinkFailureSurfaced(t *testing.T) {
	source := &fakeFailures{
		consumed: map[int64][]fsm.ConsumedStock{
			1: {{MaterialID: 55, WarehouseID: 16, Quantity: 1}},
		},
		codes: map[int64]string{55: "A"},
	}
	sink := &fakeSink{err: errors.New("rejected")}

	_, err := testService(source, sink).Run(context.Background(), 1)

	assert.ErrorContains(t, err, "rejected")
}
