package notify

import (
	"fmt"
	"strings"

	"inventory-bridge/core/reconcile"
)

// OrderSubject is the fixed subject line for purchase-order summaries.
const OrderSubject = "Your Purchase Order Update"

// FormatOrderChanges renders the detected purchase-order changes as the
// plain-text multi-line summary sent to subscribers. Output is fully
// determined by the input.
func FormatOrderChanges(changes []reconcile.Change) string {
	if len(changes) == 0 {
		return "No purchase orders were updated."
	}

	var b strings.Builder
	b.WriteString("The following purchase order(s) have had changes:\n\n")

	for _, c := range changes {
		switch {
		case c.IsNew():
			fmt.Fprintf(&b, "- Purchase order number %s has been created with a status of %s. Last modified on: %s by %s.\n",
				c.Number, c.NewStatus, c.LastModifiedOn, c.LastModifiedBy)
		case c.NewStatus == reconcile.StatusDeleted:
			fmt.Fprintf(&b, "- Purchase order number %s has been deleted (previous status: %s). Last modified on: %s by %s.\n",
				c.Number, c.OldStatus, c.LastModifiedOn, c.LastModifiedBy)
		default:
			fmt.Fprintf(&b, "- Purchase order number %s has changed status from %s to %s. Last modified on: %s by %s.\n",
				c.Number, c.OldStatus, c.NewStatus, c.LastModifiedOn, c.LastModifiedBy)
		}
	}

	return b.String()
}
