package orders

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory-bridge/core/config"
	"inventory-bridge/core/notify"
	"inventory-bridge/core/store"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the orders feature.
func NewFeature(source orderSource, st store.Store, notifier notify.Notifier, cfg config.JobConfig, logger *zap.Logger) *Feature {
	svc := NewService(source, st, notifier, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		enabled: cfg.Enabled,
	}
}

// Service exposes the underlying service for scheduling.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "orders"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
