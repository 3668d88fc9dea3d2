package handlers

import (
	"log"

	"club-management-system/services"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func SetupReportRoutes(app *fiber.App, reports *services.ReportService) {
	h := &ReportHandler{Reports: reports}

	app.Get("/reports/revenue", h.GetRevenueReport)
	app.Get("/reports/participation", h.GetParticipationReport)
	app.Post("/reports/revenue/export", h.ExportRevenueReport)
	app.Post("/reports/participation/export", h.ExportParticipationReport)
}

func (h *ReportHandler) GetRevenueReport(c *fiber.Ctx) error {
	report, err := h.Reports.RevenueReport(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(report)
}

func (h *ReportHandler) GetParticipationReport(c *fiber.Ctx) error {
	rows, err := h.Reports.ParticipationReport(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(rows)
}

func (h *ReportHandler) ExportRevenueReport(c *fiber.Ctx) error {
	url, err := h.Reports.ExportRevenueCSV(c.Context())
	if err != nil {
		log.Printf("ERROR exporting revenue report: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "export failed"})
	}
	return c.Status(201).JSON(fiber.Map{"url": url})
}

func (h *ReportHandler) ExportParticipationReport(c *fiber.Ctx) error {
	url, err := h.Reports.ExportParticipationCSV(c.Context())
	if err != nil {
		log.Printf("ERROR exporting participation report: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "export failed"})
	}
	return c.Status(201).JSON(fiber.Map{"url": url})
}
