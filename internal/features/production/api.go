package production

import (
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ProductionApi struct {
	controller *ProductionController
	config     *config.Config
}

func NewProductionApi(controller *ProductionController, config *config.Config) *ProductionApi {
	return &ProductionApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers daily production routes
func (h *ProductionApi) Setup(app *fiber.App) {
	g := app.Group("/api/production", middleware.AuthMiddleware(h.config.SessionCookie, h.config.SkipAuth))

	g.Get("/entries", middleware.RequireRoles(utils.RoleManager, utils.RoleAdmin), h.controller.AllEntries)
	g.Post("/entries", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.CreateEntry)
	g.Get("/entries/:id", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.GetEntry)
}
