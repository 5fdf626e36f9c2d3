package orders

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory-bridge/core/logger"
	"inventory-bridge/core/sched"
)

// Handler handles HTTP triggers for the orders feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the orders routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Post("/sync", h.HandleSync)
	group.Get("/plan", h.HandlePlan)
}

// HandleSync runs one diff cycle and reports the outcome.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Purchase order sync triggered via webhook")

	res, err := h.service.Run(c.Context())
	if errors.Is(err, sched.ErrRunInFlight) {
		l.Info("Purchase order sync already running, trigger skipped")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status": "skipped",
		})
	}
	if err != nil {
		l.Error("Purchase order sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}

// HandlePlan previews the diff without touching the store or notifying.
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Purchase order plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"empty":   plan.IsEmpty(),
		"changes": plan.Changes,
	})
}
