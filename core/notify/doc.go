// Package notify delivers purchase-order change summaries to subscribers.
//
// The Notifier interface abstracts the channel; the production
// implementation publishes to an SNS topic with a fixed subject line.
// FormatOrderChanges turns the diff engine's change list into the
// plain-text body.
package notify
