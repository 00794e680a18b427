package search

import (
	"stitchmes/internal/api"
	"stitchmes/internal/config"
	"stitchmes/internal/reportquery"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SearchController struct {
	Service SearchService
	Config  *config.Config
	Log     *zap.Logger
}

func NewSearchController(service SearchService, cfg *config.Config, log *zap.Logger) *SearchController {
	return &SearchController{Service: service, Config: cfg, Log: log}
}

// Search serves the cross-module report
func (ctrl *SearchController) Search(c *fiber.Ctx) error {
	q := api.ParseReportQuery(c, Definition())

	switch q.Format {
	case reportquery.FormatCSV:
		rows, err := ctrl.Service.ExportRows(c.UserContext(), q)
		if err != nil {
			return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
		}
		return api.SendCSV(c, Definition(), rows)
	case reportquery.FormatXLSX:
		rows, err := ctrl.Service.ExportRows(c.UserContext(), q)
		if err != nil {
			return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
		}
		return api.SendXLSX(c, Definition(), rows)
	default:
		result, err := ctrl.Service.Report(c.UserContext(), q)
		if err != nil {
			return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
		}
		return c.JSON(result)
	}
}
