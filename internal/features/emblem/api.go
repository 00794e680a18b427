package emblem

import (
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type EmblemApi struct {
	controller *EmblemController
	config     *config.Config
}

func NewEmblemApi(controller *EmblemController, config *config.Config) *EmblemApi {
	return &EmblemApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers emblem application routes
func (h *EmblemApi) Setup(app *fiber.App) {
	g := app.Group("/api/emblem", middleware.AuthMiddleware(h.config.SessionCookie, h.config.SkipAuth))

	g.Get("/entries", middleware.RequireRoles(utils.RoleManager, utils.RoleAdmin), h.controller.AllEntries)
	g.Post("/submissions", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.CreateSubmission)
	g.Get("/submissions/:id", middleware.RequireRoles(utils.RoleWorker, utils.RoleManager, utils.RoleAdmin), h.controller.GetSubmission)
}
