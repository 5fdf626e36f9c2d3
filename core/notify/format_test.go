package notify

import (
	"testing"

	"inventory-bridge/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderChanges_Empty(t *testing.T) {
	assert.Equal(t, "No purchase orders were updated.", FormatOrderChanges(nil))
	assert.Equal(t, "No purchase orders were updated.", FormatOrderChanges([]reconcile.Change{}))
}

func TestFormatOrderChanges_AllVariants(t *testing.T) {
	changes := []reconcile.Change{
		{Number: "PO-1", NewStatus: "Open", LastModifiedOn: "01/05/2024, 09:30:00", LastModifiedBy: "alice"},
		{Number: "PO-2", OldStatus: "Open", NewStatus: reconcile.StatusDeleted, LastModifiedOn: "01/05/2024, 10:00:00", LastModifiedBy: "bob"},
		{Number: "PO-3", OldStatus: "Open", NewStatus: "Costed", LastModifiedOn: "01/05/2024, 11:15:00", LastModifiedBy: "carol"},
	}

	got := FormatOrderChanges(changes)

	want := "The following purchase order(s) have had changes:\n\n" +
		"- Purchase order number PO-1 has been created with a status of Open. Last modified on: 01/05/2024, 09:30:00 by alice.\n" +
		"- Purchase order number PO-2 has been deleted (previous status: Open). Last modified on: 01/05/2024, 10:00:00 by bob.\n" +
		"- Purchase order number PO-3 has changed status from Open to Costed. Last modified on: 01/05/2024, 11:15:00 by carol.\n"
	assert.Equal(t, want, got)
}

// TestFormatOrderChanges_Deterministic pins byte-for-byte reproducibility
// for identical input.
func TestFormatOrderChanges_Deterministic(t *testing.T) {
	changes := []reconcile.Change{
		{Number: "PO-9", OldStatus: "Placed", NewStatus: "Complete", LastModifiedOn: "t", LastModifiedBy: "u"},
	}
	assert.Equal(t, FormatOrderChanges(changes), FormatOrderChanges(changes))
}
