package laser

import (
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type LaserApi struct {
	controller *LaserController
	config     *config.Config
}

func NewLaserApi(controller *LaserController, config *config.Config) *LaserApi {
	return &LaserApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers laser cutting routes
func (h *LaserApi) Setup(app *fiber.App) {
	g := app.Group("/api/laser", middleware.AuthMiddleware(h.config.SessionCookie, h.config.SkipAuth))

	g.Get("/entries", middleware.RequireRoles(utils.RoleManager, utils.RoleAdmin), h.controller.AllEntries)
	g.Post("/entries", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.CreateEntry)
	g.Get("/entries/:id", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.GetEntry)
}
