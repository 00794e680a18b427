package search

import (
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SearchApi struct {
	controller *SearchController
	config     *config.Config
}

func NewSearchApi(controller *SearchController, config *config.Config) *SearchApi {
	return &SearchApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers the global search route
func (h *SearchApi) Setup(app *fiber.App) {
	app.Get("/api/search",
		middleware.AuthMiddleware(h.config.SessionCookie, h.config.SkipAuth),
		middleware.RequireRoles(utils.RoleManager, utils.RoleAdmin),
		h.controller.Search,
	)
}
