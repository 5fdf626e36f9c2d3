package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WithRayID scopes a logger to the request identified by the ray_id the
// rayid middleware stored in the Fiber context. Requests without one get
// the logger back unchanged, so the helper is safe on any route.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}
