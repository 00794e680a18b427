package system

import (
	"stitchmes/internal/database"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	pg *database.PostgresDB
}

func NewHealthApi(pg *database.PostgresDB) *HealthApi {
	return &HealthApi{pg: pg}
}

// Setup registers the health probe
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		if err := h.pg.DB.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  "database unreachable",
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
}
