package catalog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory-bridge/core/logger"
	"inventory-bridge/core/sched"
)

// Handler handles HTTP triggers for the catalog feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/sync", h.HandleSync)
}

// HandleSync runs one catalog match and reports the outcome.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Catalog sync triggered via webhook")

	res, err := h.service.Run(c.Context())
	if errors.Is(err, sched.ErrRunInFlight) {
		l.Info("Catalog sync already running, trigger skipped")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status": "skipped",
		})
	}
	if err != nil {
		l.Error("Catalog sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}
