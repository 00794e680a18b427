package api

import (
	"errors"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleServiceError maps service errors onto the HTTP error envelope.
// Database and other unexpected faults are logged with full detail; the
// client only sees the raw message outside production.
func HandleServiceError(c *fiber.Ctx, log *zap.Logger, production bool, err error) error {
	var vErr *common_models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": vErr.Error(),
		})
	case errors.Is(err, common_models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, common_models.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	}

	log.Error("request failed",
		zap.String("request_id", middleware.RequestId(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)

	message := "Internal server error"
	if !production {
		message = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
