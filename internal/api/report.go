package api

import (
	"stitchmes/internal/reportquery"

	"github.com/gofiber/fiber/v2"
)

// ParseReportQuery reads the report query string off the request
func ParseReportQuery(c *fiber.Ctx, def *reportquery.Definition) reportquery.Query {
	return reportquery.ParseQuery(func(key string) string {
		return c.Query(key)
	}, def)
}

// SendCSV writes the unpaged row set as a csv attachment with caching disabled
func SendCSV(c *fiber.Ctx, def *reportquery.Definition, rows []map[string]interface{}) error {
	body := reportquery.RenderCSV(def.CSVColumns, rows)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+def.ExportFilename("csv")+`"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(body)
}

// SendXLSX writes the unpaged row set as a spreadsheet attachment
func SendXLSX(c *fiber.Ctx, def *reportquery.Definition, rows []map[string]interface{}) error {
	body, err := reportquery.RenderXLSX(def.CSVColumns, rows)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+def.ExportFilename("xlsx")+`"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(body)
}
