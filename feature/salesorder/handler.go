package salesorder

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory-bridge/core/logger"
)

// Handler handles HTTP triggers for the salesorder feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the salesorder routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/salesorder")
	group.Post("/failures", h.HandleFailureClosed)
}

// failureEvent is the webhook body sent when a failure closes.
type failureEvent struct {
	FailureID int64 `json:"failure_id"`
}

// HandleFailureClosed turns one closed failure into a sales order.
func (h *Handler) HandleFailureClosed(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var event failureEvent
	if err := c.BodyParser(&event); err != nil || event.FailureID == 0 {
		l.Warn("Rejected malformed failure webhook", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must carry a non-zero failure_id",
		})
	}
	l.Info("Failure close webhook received", zap.Int64("failure_id", event.FailureID))

	res, err := h.service.Run(c.Context(), event.FailureID)
	if err != nil {
		l.Error("Sales order write-back failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}
