package reconcile

import "strings"

// NormalizeCode canonicalizes a product/material identifier for comparison:
// surrounding whitespace is trimmed and the code is uppercased. The
// function is idempotent.
//
// Every cross-platform code comparison must go through this; comparing a
// normalized code against a raw one is the bug class this exists to remove.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
