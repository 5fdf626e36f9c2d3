// Package archive persists sync run reports to object storage.
//
// Every completed job run produces a small JSON report (counts, detected
// changes, errors) which is archived for audit. The backing store is any
// S3-compatible service reached through the Minio client; the Archiver
// ensures the bucket exists and writes one object per run, keyed by job
// name and start time.
package archive
