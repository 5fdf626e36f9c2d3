package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"inventory-bridge/core/archive"
	"inventory-bridge/core/archive/mocks"
)

func testArchiver(client archive.Client) *archive.Archiver {
	cfg := archive.Config{Bucket: "sync-run-reports", Region: "us-east-1"}
	return archive.NewArchiver(client, cfg, zap.NewNop())
}

func TestEnsureBucket(t *testing.T) {
	t.Run("AlreadyExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sync-run-reports").Return(true, nil)

		err := testArchiver(client).EnsureBucket(context.Background())

		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatesMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sync-run-reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "sync-run-reports", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		err := testArchiver(client).EnsureBucket(context.Background())

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}

func TestStoreReportObjectNaming(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject",
		mock.Anything,
		"sync-run-reports",
		"stock/2026-03-01T06:00:00Z.json",
		mock.Anything,
		mock.AnythingOfType("int64"),
		mock.Anything,
	).Return(minio.UploadInfo{}, nil)

	report := archive.Report{
		Job:            "stock",
		StartedAt:      time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC),
		FinishedAt:     time.Date(2026, 3, 1, 6, 1, 30, 0, time.UTC),
		ItemsProcessed: 12,
		ChangesApplied: 3,
	}
	err := testArchiver(client).StoreReport(context.Background(), report)

	assert.NoError(t, err)
	client.AssertExpectations(t)
}
