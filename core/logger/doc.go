// Package logger builds the zap logger used across the sync jobs.
//
// Every log line carries "time", "level" and "message" keys so the
// scheduled runs and the webhook-triggered runs aggregate under one
// schema. WithRayID ties webhook log lines to the request that
// triggered them.
package logger
