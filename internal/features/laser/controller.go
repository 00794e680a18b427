package laser

import (
	"stitchmes/internal/api"
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/internal/reportquery"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LaserController struct {
	Service LaserService
	Config  *config.Config
	Log     *zap.Logger
}

func NewLaserController(service LaserService, cfg *config.Config, log *zap.Logger) *LaserController {
	return &LaserController{Service: service, Config: cfg, Log: log}
}

func (ctrl *LaserController) AllEntries(c *fiber.Ctx) error {
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

func (ctrl *LaserController) CreateEntry(c *fiber.Ctx) error {
	var input CreateEntryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := ctrl.Service.CreateEntry(c.UserContext(), input, middleware.Claims(c))
	if err != nil {
		return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (ctrl *LaserController) GetEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry id",
		})
	}

	entry, err := ctrl.Service.GetEntry(c.UserContext(), int64(id), middleware.Claims(c))
	if err != nil {
		return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
	}
	return c.JSON(entry)
}
