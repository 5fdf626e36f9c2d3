// Package utils provides common utility functions for the Inventory Bridge.
// It includes helper functions for type conversion and other shared logic
// that doesn't fit into domain-specific packages. The conversion helpers
// are lenient on purpose: the field-service API returns some numeric
// attributes as strings depending on endpoint and record age.
package utils
