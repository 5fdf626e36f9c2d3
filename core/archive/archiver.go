package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report summarises one completed sync run.
type Report struct {
	// Job is the name of the sync job that ran.
	Job string `json:"job"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
	// FinishedAt is when the run ended.
	FinishedAt time.Time `json:"finished_at"`
	// ItemsProcessed counts the records the run examined.
	ItemsProcessed int `json:"items_processed"`
	// ChangesApplied counts the writes the run performed.
	ChangesApplied int `json:"changes_applied"`
	// Error holds the run's failure message, empty on success.
	Error string `json:"error,omitempty"`
	// Detail carries job-specific summary data.
	Detail any `json:"detail,omitempty"`
}

// Archiver writes run reports to object storage.
type Archiver struct {
	client Client
	bucket string
	region string
	logger *zap.Logger
}

// NewArchiver creates an Archiver writing to the configured bucket.
func NewArchiver(client Client, cfg Config, logger *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
	}
}

// EnsureBucket creates the report bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", a.bucket, err)
	}
	return nil
}

// StoreReport archives one run report. Object names follow
// <job>/<RFC3339 start time>.json so a bucket listing groups runs by job
// in chronological order.
func (a *Archiver) StoreReport(ctx context.Context, report Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report for job %q: %w", report.Job, err)
	}

	objectName := fmt.Sprintf("%s/%s.json", report.Job, report.StartedAt.UTC().Format(time.RFC3339))
	_, err = a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("archiving report %q: %w", objectName, err)
	}

	a.logger.Debug("archived run report",
		zap.String("job", report.Job),
		zap.String("object", objectName),
	)
	return nil
}
