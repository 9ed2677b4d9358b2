package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/middleware"
	"admissions-portal/internal/service/export"
)

type ExportHandler struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) GenerateForClass(c *fiber.Ctx) error {
	url, err := h.exportService.GenerateForClass(c.Context(), c.Params("classId"))
	return exportResponse(c, url, err, "Class not found")
}

func (h *ExportHandler) GenerateForSchool(c *fiber.Ctx) error {
	url, err := h.exportService.GenerateForSchool(c.Context(), c.Params("schoolId"))
	return exportResponse(c, url, err, "School not found")
}

func (h *ExportHandler) GenerateAll(c *fiber.Ctx) error {
	url, err := h.exportService.GenerateAll(c.Context())
	return exportResponse(c, url, err, "")
}

func exportResponse(c *fiber.Ctx, url string, err error, notFoundMessage string) error {
	if err != nil {
		if notFoundMessage != "" && errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound(notFoundMessage)
		}
		if errors.Is(err, export.ErrStorageUnavailable) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Export storage is unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": url,
	})
}
