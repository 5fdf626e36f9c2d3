package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"inventory-bridge/core/archive"
	"inventory-bridge/core/config"
	"inventory-bridge/core/erp"
	"inventory-bridge/core/fsm"
	"inventory-bridge/core/logger"
	"inventory-bridge/core/metrics"
	"inventory-bridge/core/notify"
	"inventory-bridge/core/sched"
	"inventory-bridge/core/secrets"
	"inventory-bridge/core/store"
)

// deps bundles the shared infrastructure every command needs.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	secrets  secrets.Provider
	fsm      *fsm.Client
	store    store.Store
	notifier notify.Notifier
	archiver *archive.Archiver
}

// buildDeps loads configuration and wires the platform clients, snapshot
// store, notifier and report archive. The archiver is nil when archiving
// is disabled.
func buildDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := secrets.NewProvider(ctx, cfg.Secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	st, err := buildStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	notifier, err := notify.NewSNSNotifier(ctx, cfg.Notify, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}

	var archiver *archive.Archiver
	if cfg.Archive.Enabled {
		client, err := archive.NewClient(cfg.Archive)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize archive client: %w", err)
		}
		archiver = archive.NewArchiver(client, cfg.Archive, l)
		if err := archiver.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare archive bucket: %w", err)
		}
	}

	return &deps{
		cfg:      cfg,
		logger:   l,
		secrets:  provider,
		fsm:      fsm.NewClient(cfg.FSM, provider, l),
		store:    st,
		notifier: notifier,
		archiver: archiver,
	}, nil
}

func buildStore(ctx context.Context, cfg store.Config) (store.Store, error) {
	if !cfg.IsValidBackend() {
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	switch cfg.Backend {
	case store.BackendMySQL:
		return store.NewMySQLStore(cfg)
	default:
		return store.NewDynamoStore(ctx, cfg)
	}
}

// erpClient builds an inventory platform client identified by the calling
// job name.
func (d *deps) erpClient(job string) *erp.Client {
	return erp.NewClient(d.cfg.ERP, d.secrets, d.logger, job)
}

// runJob executes one job run with metrics and report archiving wrapped
// around it.
func (d *deps) runJob(ctx context.Context, name string, fn func(ctx context.Context) (processed, applied int, err error)) error {
	start := time.Now()
	processed, applied, err := fn(ctx)
	if errors.Is(err, sched.ErrRunInFlight) {
		d.logger.Info("Job already running, trigger skipped", zap.String("job", name))
		return nil
	}
	metrics.TrackJob(name, start, err)

	if d.archiver != nil {
		report := archive.Report{
			Job:            name,
			StartedAt:      start,
			FinishedAt:     time.Now(),
			ItemsProcessed: processed,
			ChangesApplied: applied,
		}
		if err != nil {
			report.Error = err.Error()
		}
		if archErr := d.archiver.StoreReport(ctx, report); archErr != nil {
			d.logger.Error("Failed to archive run report",
				zap.String("job", name),
				zap.Error(archErr),
			)
		}
	}
	return err
}
