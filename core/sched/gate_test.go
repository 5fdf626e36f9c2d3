package sched

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateSkipsOverlappingRun(t *testing.T) {
	var gate Gate

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- gate.Run(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	err := gate.Run(context.Background(), func(ctx context.Context) error {
		t.Error("overlapping run must not execute")
		return nil
	})
	assert.ErrorIs(t, err, ErrRunInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestGateReleasesAfterRun(t *testing.T) {
	var gate Gate

	ran := 0
	for i := 0; i < 3; i++ {
		err := gate.Run(context.Background(), func(ctx context.Context) error {
			ran++
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, ran)
}

func TestGatePropagatesRunError(t *testing.T) {
	var gate Gate

	err := gate.Run(context.Background(), func(ctx context.Context) error {
		return context.DeadlineExceeded
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The gate must be reusable after a failed run.
	err = gate.Run(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)
}
