package sched

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one recurring unit of work.
type Job struct {
	// Name identifies the job in logs.
	Name string
	// Interval is the fixed delay between runs.
	Interval time.Duration
	// Run executes one job run.
	Run func(ctx context.Context) error
}

// Scheduler drives registered jobs on their intervals.
type Scheduler struct {
	logger *zap.Logger
	jobs   []Job

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an empty Scheduler.
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Add registers a job. Must be called before Start.
func (s *Scheduler) Add(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches one ticker goroutine per registered job and returns
// immediately. Each job also runs once at startup so a fresh deploy does
// not wait a full interval for its first sync. Runs of the same job are
// sequential; ticks that land while a run is in progress are dropped.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
}

// Stop cancels all job loops and blocks until in-flight runs return.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()

	run := func() {
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("job run failed",
				zap.String("job", job.Name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		s.logger.Info("job run finished",
			zap.String("job", job.Name),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	run()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
