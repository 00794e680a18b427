package emblem

import (
	"stitchmes/internal/api"
	"stitchmes/internal/config"
	"stitchmes/internal/middleware"
	"stitchmes/internal/reportquery"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EmblemController struct {
	Service EmblemService
	Config  *config.Config
	Log     *zap.Logger
}

func NewEmblemController(service EmblemService, cfg *config.Config, log *zap.Logger) *EmblemController {
	return &EmblemController{Service: service, Config: cfg, Log: log}
}

func (ctrl *EmblemController) AllEntries(c *fiber.Ctx) error {
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

func (ctrl *EmblemController) CreateSubmission(c *fiber.Ctx) error {
	var input CreateSubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sub, err := ctrl.Service.CreateSubmission(c.UserContext(), input, middleware.Claims(c))
	if err != nil {
		return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (ctrl *EmblemController) GetSubmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid submission id",
		})
	}

	sub, err := ctrl.Service.GetSubmission(c.UserContext(), int64(id), middleware.Claims(c))
	if err != nil {
		return api.HandleServiceError(c, ctrl.Log, ctrl.Config.IsProduction(), err)
	}
	return c.JSON(sub)
}
