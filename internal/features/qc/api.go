package qc

import (
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type QCApi struct {
	controller *QCController
	config     *config.Config
}

func NewQCApi(controller *QCController, config *config.Config) *QCApi {
	return &QCApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers QC inspection routes
func (h *QCApi) Setup(app *fiber.App) {
	g := app.Group("/api/qc", middleware.AuthMiddleware(h.config.SessionCookie, h.config.SkipAuth))

	g.Get("/entries", middleware.RequireRoles(utils.RoleManager, utils.RoleAdmin), h.controller.AllEntries)
	g.Post("/entries", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.CreateEntry)
	g.Get("/entries/:id", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.GetEntry)
}
