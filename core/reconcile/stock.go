package reconcile

// MovementAction is the direction of a stock adjustment.
type MovementAction string

const (
	// ActionAdd increases on-hand stock on the target platform.
	ActionAdd MovementAction = "ADD"
	// ActionAbate consumes on-hand stock on the target platform.
	ActionAbate MovementAction = "ABATE"
)

// Movement is a signed stock adjustment instruction for one material in
// one warehouse. Quantity is always positive; the direction lives in
// Action.
type Movement struct {
	Action      MovementAction
	MaterialID  int64
	WarehouseID int
	Quantity    float64
}

// StockDelta compares the authoritative on-hand quantity against the
// target platform's figure and returns the movement that closes the gap.
// The second return value is false when the quantities already agree and
// no movement is needed.
func StockDelta(materialID int64, warehouseID int, authoritativeQty, targetQty float64) (Movement, bool) {
	switch {
	case authoritativeQty > targetQty:
		return Movement{
			Action:      ActionAdd,
			MaterialID:  materialID,
			WarehouseID: warehouseID,
			Quantity:    authoritativeQty - targetQty,
		}, true
	case authoritativeQty < targetQty:
		return Movement{
			Action:      ActionAbate,
			MaterialID:  materialID,
			WarehouseID: warehouseID,
			Quantity:    targetQty - authoritativeQty,
		}, true
	default:
		return Movement{}, false
	}
}
